package entity

import (
	"strings"
	"time"
)

// ContactDraft é o formulário de contato em edição. Só vira ContactData
// depois de passar por Build.
type ContactDraft struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	UF               string `json:"uf"`
	Position         string `json:"position"`
	RegistrationDate string `json:"registrationDate"`
}

func NewContactDraft(today time.Time) ContactDraft {
	return ContactDraft{RegistrationDate: FormatDate(today)}
}

func ContactDraftFrom(c Contact) ContactDraft {
	return ContactDraft(c.ContactData)
}

func (d ContactDraft) Build() (ContactData, error) {
	data := ContactData{
		Name:             strings.TrimSpace(d.Name),
		Email:            strings.TrimSpace(d.Email),
		Phone:            strings.TrimSpace(d.Phone),
		City:             strings.TrimSpace(d.City),
		UF:               strings.ToUpper(strings.TrimSpace(d.UF)),
		Position:         strings.TrimSpace(d.Position),
		RegistrationDate: strings.TrimSpace(d.RegistrationDate),
	}
	if err := data.Validate().Err(); err != nil {
		return ContactData{}, err
	}
	return data, nil
}

// OpportunityDraft é o formulário de oportunidade. ClosingDate vazio e
// ClosedValue em etapas abertas são descartados no Build.
type OpportunityDraft struct {
	ContactID        string      `json:"contactId"`
	VisitDate        string      `json:"visitDate"`
	City             string      `json:"city"`
	UF               string      `json:"uf"`
	Responsible      string      `json:"responsible"`
	Position         string      `json:"position"`
	Consultant       string      `json:"consultant"`
	Phase            FunnelPhase `json:"phase"`
	Notes            string      `json:"notes"`
	OpportunityValue float64     `json:"opportunityValue"`
	LastMeetingDate  string      `json:"lastMeetingDate"`
	ProposalSent     bool        `json:"proposalSent"`
	ClosingDate      string      `json:"closingDate"`
	ClosedValue      *float64    `json:"closedValue"`
}

func NewOpportunityDraft(today time.Time) OpportunityDraft {
	date := FormatDate(today)
	return OpportunityDraft{
		VisitDate:       date,
		UF:              "SP",
		Phase:           PhaseProspecting,
		LastMeetingDate: date,
	}
}

func OpportunityDraftFrom(o Opportunity) OpportunityDraft {
	d := OpportunityDraft{
		ContactID:        o.ContactID,
		VisitDate:        o.VisitDate,
		City:             o.City,
		UF:               o.UF,
		Responsible:      o.Responsible,
		Position:         o.Position,
		Consultant:       o.Consultant,
		Phase:            o.Phase,
		Notes:            o.Notes,
		OpportunityValue: o.OpportunityValue,
		LastMeetingDate:  o.LastMeetingDate,
		ProposalSent:     o.ProposalSent,
	}
	if o.ClosingDate != nil {
		d.ClosingDate = *o.ClosingDate
	}
	if o.ClosedValue != nil {
		v := *o.ClosedValue
		d.ClosedValue = &v
	}
	return d
}

func (d OpportunityDraft) Build() (OpportunityData, error) {
	data := OpportunityData{
		ContactID:        strings.TrimSpace(d.ContactID),
		VisitDate:        strings.TrimSpace(d.VisitDate),
		City:             strings.TrimSpace(d.City),
		UF:               strings.ToUpper(strings.TrimSpace(d.UF)),
		Responsible:      strings.TrimSpace(d.Responsible),
		Position:         strings.TrimSpace(d.Position),
		Consultant:       strings.TrimSpace(d.Consultant),
		Phase:            d.Phase,
		Notes:            d.Notes,
		OpportunityValue: d.OpportunityValue,
		LastMeetingDate:  strings.TrimSpace(d.LastMeetingDate),
		ProposalSent:     d.ProposalSent,
	}

	if data.Phase.IsTerminal() {
		if closing := strings.TrimSpace(d.ClosingDate); closing != "" {
			data.ClosingDate = &closing
		}
		if d.ClosedValue != nil {
			v := *d.ClosedValue
			data.ClosedValue = &v
		}
	}

	if err := data.Validate().Err(); err != nil {
		return OpportunityData{}, err
	}
	return data, nil
}
