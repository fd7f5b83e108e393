package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

const (
	// InsightsFallbackMessage é devolvido em qualquer falha do provedor.
	InsightsFallbackMessage = "Erro ao conectar com a IA. Verifique sua chave de API."
	// InsightsEmptyMessage é devolvido quando o provedor responde sem texto.
	InsightsEmptyMessage = "Não foi possível gerar insights no momento."
)

const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFailure = "failure"
)

const insightPromptTemplate = `Analise esses dados de um CRM comercial: %s.
Forneça um resumo estratégico curto em 3 pontos:
1. Saúde atual do pipeline.
2. Gargalos identificados.
3. Uma recomendação prática para o time de vendas.
Responda em Português do Brasil com tom profissional.`

// insightRow é tudo que sai do CRM para o provedor.
type insightRow struct {
	Fase      entity.FunnelPhase `json:"fase"`
	Valor     float64            `json:"valor"`
	Consultor string             `json:"consultor"`
	Proposta  bool               `json:"proposta"`
}

func BuildInsightPrompt(opps []entity.Opportunity) (string, error) {
	rows := make([]insightRow, 0, len(opps))
	for _, o := range opps {
		rows = append(rows, insightRow{
			Fase:      o.Phase,
			Valor:     o.OpportunityValue,
			Consultor: o.Consultant,
			Proposta:  o.ProposalSent,
		})
	}
	body, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("erro ao converter oportunidades: %w", err)
	}
	return fmt.Sprintf(insightPromptTemplate, body), nil
}

// Summarizer pede ao provedor um resumo do pipeline. Nunca devolve erro:
// falhas viram uma mensagem fixa.
type Summarizer struct {
	Generator TextGenerator
	Logger    *zap.Logger
	// OnOutcome, se definido, recebe OutcomeSuccess, OutcomeEmpty ou OutcomeFailure.
	OnOutcome func(outcome string)
}

func NewSummarizer(gen TextGenerator, logger *zap.Logger) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Summarizer{Generator: gen, Logger: logger}
}

func (s *Summarizer) Summarize(ctx context.Context, opps []entity.Opportunity) string {
	prompt, err := BuildInsightPrompt(opps)
	if err != nil {
		s.Logger.Error("erro ao montar prompt de insights", zap.Error(err))
		s.report(OutcomeFailure)
		return InsightsFallbackMessage
	}

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		s.Logger.Warn("provedor de IA falhou", zap.Error(err))
		s.report(OutcomeFailure)
		return InsightsFallbackMessage
	}
	if text == "" {
		s.report(OutcomeEmpty)
		return InsightsEmptyMessage
	}

	s.report(OutcomeSuccess)
	return text
}

func (s *Summarizer) report(outcome string) {
	if s.OnOutcome != nil {
		s.OnOutcome(outcome)
	}
}

type InsightState struct {
	Pending   bool      `json:"pending"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// InsightBoard roda pedidos de resumo fora da goroutine do chamador e guarda
// o último texto. Pedidos simultâneos são independentes: vale o último a
// terminar. Não há cancelamento.
type InsightBoard struct {
	summarizer *Summarizer

	mu        sync.Mutex
	inFlight  int
	text      string
	updatedAt time.Time
}

func NewInsightBoard(summarizer *Summarizer) *InsightBoard {
	return &InsightBoard{summarizer: summarizer}
}

// Request dispara um resumo e devolve um canal que recebe o texto quando pronto.
func (b *InsightBoard) Request(ctx context.Context, opps []entity.Opportunity) <-chan string {
	opps = slices.Clone(opps)
	detached := context.WithoutCancel(ctx)
	done := make(chan string, 1)

	b.mu.Lock()
	b.inFlight++
	b.mu.Unlock()

	go func() {
		text := b.summarizer.Summarize(detached, opps)

		b.mu.Lock()
		b.inFlight--
		b.text = text
		b.updatedAt = time.Now()
		b.mu.Unlock()

		done <- text
		close(done)
	}()
	return done
}

func (b *InsightBoard) State() InsightState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return InsightState{
		Pending:   b.inFlight > 0,
		Text:      b.text,
		UpdatedAt: b.updatedAt,
	}
}
