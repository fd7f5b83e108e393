package entity

import "github.com/google/uuid"

// ContactData são os campos de um contato sem o ID.
type ContactData struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	UF               string `json:"uf"`
	Position         string `json:"position"`
	RegistrationDate string `json:"registrationDate"`
}

type Contact struct {
	ID string `json:"id"`
	ContactData
}

// NewContact gera um ID novo para os dados informados.
func NewContact(data ContactData) Contact {
	return Contact{ID: uuid.NewString(), ContactData: data}
}

func (d ContactData) Validate() ValidationErrors {
	var errs ValidationErrors
	errs = requireText(errs, "name", d.Name)
	errs = requireText(errs, "email", d.Email)
	errs = requireText(errs, "phone", d.Phone)
	errs = requireText(errs, "city", d.City)
	errs = requireUF(errs, "uf", d.UF)
	errs = requireText(errs, "position", d.Position)
	errs = requireDate(errs, "registrationDate", d.RegistrationDate)
	return errs
}

func (c Contact) Validate() ValidationErrors {
	errs := requireText(nil, "id", c.ID)
	return append(errs, c.ContactData.Validate()...)
}
