package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactData() ContactData {
	return ContactData{
		Name:             "João Silva",
		Email:            "joao@tech.com",
		Phone:            "(11) 98888-7777",
		City:             "São Paulo",
		UF:               "SP",
		Position:         "CTO",
		RegistrationDate: "2024-01-15",
	}
}

func validOpportunityData() OpportunityData {
	return OpportunityData{
		ContactID:        "1",
		VisitDate:        "2024-05-10",
		City:             "São Paulo",
		UF:               "SP",
		Responsible:      "Roberto Melo",
		Position:         "Gerente",
		Consultant:       "Alice Santos",
		Phase:            PhaseProposal,
		OpportunityValue: 50000,
		LastMeetingDate:  "2024-05-12",
		ProposalSent:     true,
	}
}

func TestPhasesOrderAndTerminal(t *testing.T) {
	assert.Equal(t, []FunnelPhase{PhaseProspecting, PhaseNegotiation, PhaseProposal, PhaseLost, PhaseWon}, Phases())
	assert.True(t, PhaseWon.IsTerminal())
	assert.True(t, PhaseLost.IsTerminal())
	assert.False(t, PhaseProposal.IsTerminal())
	assert.False(t, FunnelPhase("Ganho").IsValid())

	// Phases devolve cópia
	p := Phases()
	p[0] = "x"
	assert.Equal(t, PhaseProspecting, Phases()[0])
}

func TestUFs(t *testing.T) {
	assert.Len(t, UFs(), 27)
	assert.True(t, IsValidUF("DF"))
	assert.False(t, IsValidUF("XX"))
	assert.False(t, IsValidUF("sp"))
}

func TestContactValidate(t *testing.T) {
	assert.Empty(t, validContactData().Validate())

	data := validContactData()
	data.Name = "  "
	data.UF = "ZZ"
	data.RegistrationDate = "15/01/2024"

	errs := data.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "uf", errs[1].Field)
	assert.Equal(t, "registrationDate", errs[2].Field)
	assert.Error(t, errs.Err())
}

func TestOpportunityValidate(t *testing.T) {
	assert.Empty(t, validOpportunityData().Validate())

	data := validOpportunityData()
	data.OpportunityValue = -1
	data.Phase = "Ganho"
	closed := 10.0
	data.ClosedValue = &closed

	errs := data.Validate()
	fields := []string{}
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "phase")
	assert.Contains(t, fields, "opportunityValue")
	assert.Contains(t, fields, "closedValue")
}

func TestOpportunityNotesAreOptional(t *testing.T) {
	data := validOpportunityData()
	data.Notes = ""
	assert.Empty(t, data.Validate())
}

func TestEffectiveValuePrefersClosedValue(t *testing.T) {
	data := validOpportunityData()
	assert.Equal(t, 50000.0, data.EffectiveValue())

	closed := 115000.0
	data.Phase = PhaseWon
	data.ClosedValue = &closed
	assert.Equal(t, 115000.0, data.EffectiveValue())
}

func TestNewContactGeneratesUniqueIDs(t *testing.T) {
	a := NewContact(validContactData())
	b := NewContact(validContactData())
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ContactData, b.ContactData)
}

func TestOpportunityJSONOmitsAbsentOptionals(t *testing.T) {
	o := Opportunity{ID: "101", OpportunityData: validOpportunityData()}
	body, err := json.Marshal(o)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.NotContains(t, raw, "closingDate")
	assert.NotContains(t, raw, "closedValue")
	assert.Equal(t, "Proposta", raw["phase"])
	assert.Equal(t, "1", raw["contactId"])
}

func TestContactDraftDefaultsAndBuild(t *testing.T) {
	today := time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)
	d := NewContactDraft(today)
	assert.Equal(t, "2024-06-03", d.RegistrationDate)

	_, err := d.Build()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	d.Name = " Ana "
	d.Email = "ana@x.com"
	d.Phone = "(61) 99999-0000"
	d.City = "Brasília"
	d.UF = "df"
	d.Position = "CEO"

	data, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, "Ana", data.Name)
	assert.Equal(t, "DF", data.UF)
}

func TestOpportunityDraftDefaults(t *testing.T) {
	d := NewOpportunityDraft(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "SP", d.UF)
	assert.Equal(t, PhaseProspecting, d.Phase)
	assert.Equal(t, "2024-06-03", d.VisitDate)
	assert.Equal(t, "2024-06-03", d.LastMeetingDate)
	assert.False(t, d.ProposalSent)
	assert.Nil(t, d.ClosedValue)
}

func TestOpportunityDraftDropsClosingFieldsForOpenPhases(t *testing.T) {
	zero := 0.0
	d := OpportunityDraftFrom(Opportunity{ID: "x", OpportunityData: validOpportunityData()})
	d.ClosingDate = ""
	d.ClosedValue = &zero

	data, err := d.Build()
	require.NoError(t, err)
	assert.Nil(t, data.ClosingDate)
	assert.Nil(t, data.ClosedValue)
}

func TestOpportunityDraftKeepsClosingFieldsWhenWon(t *testing.T) {
	closed := 115000.0
	d := OpportunityDraftFrom(Opportunity{ID: "x", OpportunityData: validOpportunityData()})
	d.Phase = PhaseWon
	d.ClosingDate = "2024-05-20"
	d.ClosedValue = &closed

	data, err := d.Build()
	require.NoError(t, err)
	require.NotNil(t, data.ClosingDate)
	require.NotNil(t, data.ClosedValue)
	assert.Equal(t, "2024-05-20", *data.ClosingDate)
	assert.Equal(t, 115000.0, *data.ClosedValue)

	// o rascunho não compartilha ponteiro com o registro
	closed = 1
	assert.Equal(t, 115000.0, *data.ClosedValue)
}

func TestOpportunityDraftRoundTripFromRecord(t *testing.T) {
	closingDate := "2024-05-20"
	closedValue := 115000.0
	data := validOpportunityData()
	data.Phase = PhaseWon
	data.ClosingDate = &closingDate
	data.ClosedValue = &closedValue

	rebuilt, err := OpportunityDraftFrom(Opportunity{ID: "102", OpportunityData: data}).Build()
	require.NoError(t, err)
	assert.Equal(t, data, rebuilt)
}
