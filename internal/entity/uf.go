package entity

var brazilStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// UFs retorna as 27 siglas aceitas.
func UFs() []string {
	out := make([]string, len(brazilStates))
	copy(out, brazilStates)
	return out
}

func IsValidUF(uf string) bool {
	for _, s := range brazilStates {
		if s == uf {
			return true
		}
	}
	return false
}
