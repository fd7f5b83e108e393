package entity

// FunnelPhase é a etapa do funil em que a oportunidade está.
// O valor é o rótulo persistido e exibido.
type FunnelPhase string

const (
	PhaseProspecting FunnelPhase = "Prospecção"
	PhaseNegotiation FunnelPhase = "Negociação"
	PhaseProposal    FunnelPhase = "Proposta"
	PhaseLost        FunnelPhase = "Perdido"
	PhaseWon         FunnelPhase = "Fechado"
)

var phases = []FunnelPhase{
	PhaseProspecting,
	PhaseNegotiation,
	PhaseProposal,
	PhaseLost,
	PhaseWon,
}

// Phases retorna as 5 etapas na ordem de exibição do funil.
func Phases() []FunnelPhase {
	out := make([]FunnelPhase, len(phases))
	copy(out, phases)
	return out
}

func (p FunnelPhase) IsValid() bool {
	for _, known := range phases {
		if p == known {
			return true
		}
	}
	return false
}

// IsTerminal: Perdido e Fechado encerram a oportunidade.
func (p FunnelPhase) IsTerminal() bool {
	return p == PhaseLost || p == PhaseWon
}

func (p FunnelPhase) String() string {
	return string(p)
}
