package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

func TestBuildInsightPromptProjectsOnlyFourFields(t *testing.T) {
	prompt, err := BuildInsightPrompt(fixtureOpportunities())
	require.NoError(t, err)

	assert.Contains(t, prompt, `{"fase":"Proposta","valor":50000,"consultor":"Alice Santos","proposta":true}`)
	// valor é o estimado, não o fechado
	assert.Contains(t, prompt, `{"fase":"Fechado","valor":120000,"consultor":"Bruno Lima","proposta":true}`)

	for _, leaked := range []string{"Roberto Melo", "São Paulo", "licenças", "2024-05-10", "115000"} {
		assert.NotContains(t, prompt, leaked)
	}
	assert.Contains(t, prompt, "Português do Brasil")
}

func TestBuildInsightPromptEmptyPipeline(t *testing.T) {
	prompt, err := BuildInsightPrompt(nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "CRM comercial: [].")
}

func TestSummarizeSuccess(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Alice Santos")
	})).Return("1. Pipeline saudável.", nil)

	var outcomes []string
	s := NewSummarizer(gen, nil)
	s.OnOutcome = func(o string) { outcomes = append(outcomes, o) }

	assert.Equal(t, "1. Pipeline saudável.", s.Summarize(context.Background(), fixtureOpportunities()))
	assert.Equal(t, []string{OutcomeSuccess}, outcomes)
	gen.AssertExpectations(t)
}

func TestSummarizeFailureReturnsFallback(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("dial tcp: no such host"))

	var outcomes []string
	s := NewSummarizer(gen, nil)
	s.OnOutcome = func(o string) { outcomes = append(outcomes, o) }

	got := s.Summarize(context.Background(), fixtureOpportunities())
	assert.Equal(t, "Erro ao conectar com a IA. Verifique sua chave de API.", got)
	assert.Equal(t, []string{OutcomeFailure}, outcomes)
}

func TestSummarizeEmptyResponse(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", nil)

	var outcomes []string
	s := NewSummarizer(gen, nil)
	s.OnOutcome = func(o string) { outcomes = append(outcomes, o) }

	assert.Equal(t, InsightsEmptyMessage, s.Summarize(context.Background(), nil))
	assert.Equal(t, []string{OutcomeEmpty}, outcomes)
}

func TestSummarizeReturnsWhitespaceReplyVerbatim(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("  \n", nil)

	assert.Equal(t, "  \n", NewSummarizer(gen, nil).Summarize(context.Background(), nil))
}

// gatedGenerator segura cada resposta até o teste liberar o canal
// correspondente ao consultor presente no prompt.
type gatedGenerator struct {
	gates map[string]chan string
}

func (g *gatedGenerator) Generate(_ context.Context, prompt string) (string, error) {
	for consultant, gate := range g.gates {
		if strings.Contains(prompt, consultant) {
			return <-gate, nil
		}
	}
	return "", errors.New("prompt inesperado")
}

func TestInsightBoardLastToFinishWins(t *testing.T) {
	opps := fixtureOpportunities()
	gen := &gatedGenerator{gates: map[string]chan string{
		"Alice Santos": make(chan string),
		"Bruno Lima":   make(chan string),
	}}
	board := NewInsightBoard(NewSummarizer(gen, nil))

	assert.Equal(t, InsightState{}, board.State())

	first := board.Request(context.Background(), opps[:1])
	second := board.Request(context.Background(), opps[1:])
	assert.True(t, board.State().Pending)

	gen.gates["Bruno Lima"] <- "resumo B"
	assert.Equal(t, "resumo B", <-second)
	state := board.State()
	assert.True(t, state.Pending)
	assert.Equal(t, "resumo B", state.Text)

	gen.gates["Alice Santos"] <- "resumo A"
	assert.Equal(t, "resumo A", <-first)

	state = board.State()
	assert.False(t, state.Pending)
	assert.Equal(t, "resumo A", state.Text)
	assert.False(t, state.UpdatedAt.IsZero())
}

func TestInsightBoardOutlivesCallerContext(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), mock.Anything).Return("ok", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := NewInsightBoard(NewSummarizer(gen, nil))
	assert.Equal(t, "ok", <-board.Request(ctx, []entity.Opportunity{}))
	gen.AssertExpectations(t)
}
