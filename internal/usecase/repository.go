package usecase

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

// Repository é o dono das duas coleções canônicas. Toda mutação roda inteira
// sob o mutex e termina gravando o novo estado; a gravação é best effort:
// se falhar, a mudança em memória continua valendo e o erro só é logado.
//
// Operações sobre um ID inexistente não fazem nada e devolvem false.
type Repository struct {
	mu            sync.Mutex
	contacts      []entity.Contact
	opportunities []entity.Opportunity

	contactStore     CollectionStore[entity.Contact]
	opportunityStore CollectionStore[entity.Opportunity]
	logger           *zap.Logger
}

// Snapshot é uma cópia consistente das duas coleções.
type Snapshot struct {
	Contacts      []entity.Contact     `json:"contacts"`
	Opportunities []entity.Opportunity `json:"opportunities"`
}

// NewRepository carrega o estado inicial (gravado ou seed) dos dois stores.
func NewRepository(
	ctx context.Context,
	contactStore CollectionStore[entity.Contact],
	opportunityStore CollectionStore[entity.Opportunity],
	logger *zap.Logger,
) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Repository{
		contactStore:     contactStore,
		opportunityStore: opportunityStore,
		logger:           logger,
	}
	r.contacts = contactStore.Load(ctx)
	r.opportunities = opportunityStore.Load(ctx)

	logger.Info("repositório carregado",
		zap.Int("contacts", len(r.contacts)),
		zap.Int("opportunities", len(r.opportunities)))
	return r
}

func (r *Repository) AddContact(ctx context.Context, data entity.ContactData) entity.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := entity.NewContact(data)
	for r.contactIndex(c.ID) >= 0 {
		c = entity.NewContact(data)
	}
	r.contacts = append(r.contacts, c)
	r.saveContacts(ctx)
	return c
}

// UpdateContact troca o registro inteiro mantendo a posição. O ID gravado é
// sempre o id informado.
func (r *Repository) UpdateContact(ctx context.Context, id string, c entity.Contact) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.contactIndex(id)
	if i < 0 {
		return false
	}
	c.ID = id
	r.contacts[i] = c
	r.saveContacts(ctx)
	return true
}

// DeleteContact remove o contato e, junto, todas as oportunidades dele.
// As duas chaves são gravadas como uma unidade: se a segunda falhar, a
// primeira volta ao valor anterior.
func (r *Repository) DeleteContact(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.contactIndex(id)
	if i < 0 {
		return false
	}

	previousContacts := slices.Clone(r.contacts)
	r.contacts = slices.Delete(slices.Clone(r.contacts), i, i+1)

	removed := 0
	kept := make([]entity.Opportunity, 0, len(r.opportunities))
	for _, o := range r.opportunities {
		if o.ContactID == id {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	r.opportunities = kept

	txn := NewTransaction(r.logger)
	txn.AddOperation("save_contacts", func(ctx context.Context) error {
		return r.contactStore.Save(ctx, r.contacts)
	})
	txn.AddCompensation("restore_contacts", func(ctx context.Context) error {
		return r.contactStore.Save(ctx, previousContacts)
	})
	txn.AddOperation("save_opportunities", func(ctx context.Context) error {
		return r.opportunityStore.Save(ctx, r.opportunities)
	})
	if err := txn.Execute(ctx); err != nil {
		r.logger.Warn("exclusão em cascata aplicada só em memória",
			zap.String("contact_id", id), zap.Error(err))
	}

	r.logger.Info("contato excluído",
		zap.String("contact_id", id), zap.Int("opportunities_removed", removed))
	return true
}

// AddOpportunity não confere se o contactId existe; isso é responsabilidade
// de quem monta o formulário.
func (r *Repository) AddOpportunity(ctx context.Context, data entity.OpportunityData) entity.Opportunity {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := entity.NewOpportunity(data)
	for r.opportunityIndex(o.ID) >= 0 {
		o = entity.NewOpportunity(data)
	}
	r.opportunities = append(r.opportunities, o)
	r.saveOpportunities(ctx)
	return o
}

func (r *Repository) UpdateOpportunity(ctx context.Context, id string, o entity.Opportunity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.opportunityIndex(id)
	if i < 0 {
		return false
	}
	o.ID = id
	r.opportunities[i] = o
	r.saveOpportunities(ctx)
	return true
}

func (r *Repository) DeleteOpportunity(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.opportunityIndex(id)
	if i < 0 {
		return false
	}
	r.opportunities = slices.Delete(slices.Clone(r.opportunities), i, i+1)
	r.saveOpportunities(ctx)
	return true
}

func (r *Repository) Contacts() []entity.Contact {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.contacts)
}

func (r *Repository) Opportunities() []entity.Opportunity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.opportunities)
}

func (r *Repository) Contact(id string) (entity.Contact, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.contactIndex(id); i >= 0 {
		return r.contacts[i], true
	}
	return entity.Contact{}, false
}

func (r *Repository) Opportunity(id string) (entity.Opportunity, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.opportunityIndex(id); i >= 0 {
		return r.opportunities[i], true
	}
	return entity.Opportunity{}, false
}

func (r *Repository) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Contacts:      slices.Clone(r.contacts),
		Opportunities: slices.Clone(r.opportunities),
	}
}

func (r *Repository) contactIndex(id string) int {
	return slices.IndexFunc(r.contacts, func(c entity.Contact) bool { return c.ID == id })
}

func (r *Repository) opportunityIndex(id string) int {
	return slices.IndexFunc(r.opportunities, func(o entity.Opportunity) bool { return o.ID == id })
}

func (r *Repository) saveContacts(ctx context.Context) {
	if err := r.contactStore.Save(ctx, r.contacts); err != nil {
		r.logger.Warn("contatos atualizados só em memória", zap.Error(err))
	}
}

func (r *Repository) saveOpportunities(ctx context.Context) {
	if err := r.opportunityStore.Save(ctx, r.opportunities); err != nil {
		r.logger.Warn("oportunidades atualizadas só em memória", zap.Error(err))
	}
}
