package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

func TestRepositoryLoadsInitialState(t *testing.T) {
	repo, _, _ := newFixtureRepository(t)

	snap := repo.Snapshot()
	assert.Len(t, snap.Contacts, 2)
	assert.Len(t, snap.Opportunities, 2)
}

func TestAddContactAppendsAndPersists(t *testing.T) {
	repo, contacts, _ := newFixtureRepository(t)

	data := entity.ContactData{
		Name: "Ana Costa", Email: "ana@x.com", Phone: "(61) 99999-0000",
		City: "Brasília", UF: "DF", Position: "CEO", RegistrationDate: "2024-06-01",
	}
	created := repo.AddContact(context.Background(), data)

	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "1", created.ID)
	assert.Equal(t, data, created.ContactData)

	all := repo.Contacts()
	require.Len(t, all, 3)
	assert.Equal(t, created, all[2])

	saved, saves := contacts.last()
	assert.Equal(t, 1, saves)
	assert.Equal(t, all, saved)

	got, ok := repo.Contact(created.ID)
	assert.True(t, ok)
	assert.Equal(t, created, got)
}

func TestUpdateContactKeepsPositionAndID(t *testing.T) {
	repo, _, _ := newFixtureRepository(t)

	c, ok := repo.Contact("1")
	require.True(t, ok)
	c.ID = "outro"
	c.Position = "CEO"

	assert.True(t, repo.UpdateContact(context.Background(), "1", c))

	all := repo.Contacts()
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "CEO", all[0].Position)
	assert.Equal(t, "2", all[1].ID)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	repo, contacts, opps := newFixtureRepository(t)
	before := repo.Snapshot()

	assert.False(t, repo.UpdateContact(ctx, "999", entity.Contact{}))
	assert.False(t, repo.DeleteContact(ctx, "999"))
	assert.False(t, repo.UpdateOpportunity(ctx, "999", entity.Opportunity{}))
	assert.False(t, repo.DeleteOpportunity(ctx, "999"))

	assert.Equal(t, before, repo.Snapshot())
	_, contactSaves := contacts.last()
	_, oppSaves := opps.last()
	assert.Zero(t, contactSaves)
	assert.Zero(t, oppSaves)

	_, ok := repo.Opportunity("999")
	assert.False(t, ok)
}

func TestDeleteContactCascades(t *testing.T) {
	repo, contacts, opps := newFixtureRepository(t)

	assert.True(t, repo.DeleteContact(context.Background(), "1"))

	snap := repo.Snapshot()
	require.Len(t, snap.Contacts, 1)
	assert.Equal(t, "2", snap.Contacts[0].ID)
	require.Len(t, snap.Opportunities, 1)
	assert.Equal(t, "102", snap.Opportunities[0].ID)

	savedContacts, _ := contacts.last()
	savedOpps, _ := opps.last()
	assert.Equal(t, snap.Contacts, savedContacts)
	assert.Equal(t, snap.Opportunities, savedOpps)
}

func TestDeleteContactWithoutOpportunitiesStillSavesBoth(t *testing.T) {
	repo, contacts, opps := newFixtureRepository(t)
	ctx := context.Background()

	created := repo.AddContact(ctx, fixtureContacts()[0].ContactData)
	assert.True(t, repo.DeleteContact(ctx, created.ID))

	_, contactSaves := contacts.last()
	_, oppSaves := opps.last()
	assert.Equal(t, 2, contactSaves)
	assert.Equal(t, 1, oppSaves)
	assert.Len(t, repo.Opportunities(), 2)
}

func TestDeleteContactRestoresContactsKeyWhenOpportunitySaveFails(t *testing.T) {
	ctx := context.Background()
	all := fixtureContacts()

	contactStore := new(MockCollectionStore[entity.Contact])
	contactStore.On("Load", mock.Anything).Return(all)
	contactStore.On("Save", mock.Anything, []entity.Contact{all[1]}).Return(nil).Once()
	contactStore.On("Save", mock.Anything, all).Return(nil).Once()

	oppStore := new(MockCollectionStore[entity.Opportunity])
	oppStore.On("Load", mock.Anything).Return(fixtureOpportunities())
	oppStore.On("Save", mock.Anything, mock.Anything).Return(errors.New("quota excedida")).Once()

	repo := NewRepository(ctx, contactStore, oppStore, nil)
	assert.True(t, repo.DeleteContact(ctx, "1"))

	// a exclusão continua valendo em memória
	assert.Len(t, repo.Contacts(), 1)
	assert.Len(t, repo.Opportunities(), 1)

	contactStore.AssertExpectations(t)
	oppStore.AssertExpectations(t)
}

func TestOpportunityCRUD(t *testing.T) {
	ctx := context.Background()
	repo, _, opps := newFixtureRepository(t)

	data := fixtureOpportunities()[0].OpportunityData
	data.Consultant = "Carla Dias"
	created := repo.AddOpportunity(ctx, data)
	require.Len(t, repo.Opportunities(), 3)

	created.Phase = entity.PhaseNegotiation
	assert.True(t, repo.UpdateOpportunity(ctx, created.ID, created))
	got, ok := repo.Opportunity(created.ID)
	require.True(t, ok)
	assert.Equal(t, entity.PhaseNegotiation, got.Phase)
	assert.Equal(t, created.ID, repo.Opportunities()[2].ID)

	assert.True(t, repo.DeleteOpportunity(ctx, "101"))
	remaining := repo.Opportunities()
	require.Len(t, remaining, 2)
	assert.Equal(t, "102", remaining[0].ID)
	assert.Equal(t, created.ID, remaining[1].ID)

	saved, saves := opps.last()
	assert.Equal(t, 3, saves)
	assert.Equal(t, remaining, saved)
	assert.Len(t, repo.Contacts(), 2)
}

func TestReadsReturnCopies(t *testing.T) {
	repo, _, _ := newFixtureRepository(t)

	list := repo.Contacts()
	list[0].Name = "alterado"
	assert.Equal(t, "João Silva", repo.Contacts()[0].Name)
}
