package database

import "github.com/xavierca1/carretel-crm/internal/entity"

// SeedContacts é a base inicial usada quando nada foi gravado ainda.
func SeedContacts() []entity.Contact {
	return []entity.Contact{
		{ID: "1", ContactData: entity.ContactData{
			Name: "João Silva", Email: "joao@tech.com", Phone: "(11) 98888-7777",
			City: "São Paulo", UF: "SP", Position: "CTO", RegistrationDate: "2024-01-15",
		}},
		{ID: "2", ContactData: entity.ContactData{
			Name: "Maria Souza", Email: "maria@vendas.com", Phone: "(21) 97777-6666",
			City: "Rio de Janeiro", UF: "RJ", Position: "Diretora Comercial", RegistrationDate: "2024-02-10",
		}},
	}
}

func SeedOpportunities() []entity.Opportunity {
	closingDate := "2024-05-20"
	closedValue := 115000.0

	return []entity.Opportunity{
		{ID: "101", OpportunityData: entity.OpportunityData{
			ContactID:        "1",
			VisitDate:        "2024-05-10",
			City:             "São Paulo",
			UF:               "SP",
			Responsible:      "Roberto Melo",
			Position:         "Gerente",
			Consultant:       "Alice Santos",
			Phase:            entity.PhaseProposal,
			Notes:            "Cliente interessado em expansão de licenças.",
			OpportunityValue: 50000,
			LastMeetingDate:  "2024-05-12",
			ProposalSent:     true,
		}},
		{ID: "102", OpportunityData: entity.OpportunityData{
			ContactID:        "2",
			VisitDate:        "2024-05-15",
			City:             "Rio de Janeiro",
			UF:               "RJ",
			Responsible:      "Marcos Braz",
			Position:         "VP",
			Consultant:       "Bruno Lima",
			Phase:            entity.PhaseWon,
			Notes:            "Contrato assinado em tempo recorde.",
			OpportunityValue: 120000,
			LastMeetingDate:  "2024-05-14",
			ProposalSent:     true,
			ClosingDate:      &closingDate,
			ClosedValue:      &closedValue,
		}},
	}
}
