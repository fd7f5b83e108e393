package entity

import "github.com/google/uuid"

// OpportunityData são os campos de uma oportunidade sem o ID.
type OpportunityData struct {
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

	// Opcionais: ausentes não são serializados.
	ClosingDate *string  `json:"closingDate,omitempty"`
	ClosedValue *float64 `json:"closedValue,omitempty"`
}

type Opportunity struct {
	ID string `json:"id"`
	OpportunityData
}

func NewOpportunity(data OpportunityData) Opportunity {
	return Opportunity{ID: uuid.NewString(), OpportunityData: data}
}

// EffectiveValue é o valor usado nas somas: o fechado, se houver, senão o estimado.
func (d OpportunityData) EffectiveValue() float64 {
	if d.ClosedValue != nil {
		return *d.ClosedValue
	}
	return d.OpportunityValue
}

func (d OpportunityData) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = requireText(errs, "contactId", d.ContactID)
	errs = requireDate(errs, "visitDate", d.VisitDate)
	errs = requireText(errs, "city", d.City)
	errs = requireUF(errs, "uf", d.UF)
	errs = requireText(errs, "responsible", d.Responsible)
	errs = requireText(errs, "position", d.Position)
	errs = requireText(errs, "consultant", d.Consultant)
	if !d.Phase.IsValid() {
		errs = append(errs, ValidationError{"phase", "must be a known funnel phase"})
	}
	if d.OpportunityValue < 0 {
		errs = append(errs, ValidationError{"opportunityValue", "must not be negative"})
	}
	errs = requireDate(errs, "lastMeetingDate", d.LastMeetingDate)
	if d.ClosingDate != nil && !IsValidDate(*d.ClosingDate) {
		errs = append(errs, ValidationError{"closingDate", "must be a valid date (YYYY-MM-DD)"})
	}
	if d.ClosedValue != nil {
		if !d.Phase.IsTerminal() {
			errs = append(errs, ValidationError{"closedValue", "is only allowed for closed phases"})
		} else if *d.ClosedValue < 0 {
			errs = append(errs, ValidationError{"closedValue", "must not be negative"})
		}
	}
	return errs
}

func (o Opportunity) Validate() ValidationErrors {
	errs := requireText(nil, "id", o.ID)
	return append(errs, o.OpportunityData.Validate()...)
}
