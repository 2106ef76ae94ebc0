package heredity

// GeneState is the number of copies of the gene that a person carries.
type GeneState uint8

const (
	GeneZero GeneState = iota
	GeneOne
	GeneTwo
)

// NGeneStates is the size of the gene-state domain.
const NGeneStates = 3

func (g GeneState) String() string {
	switch g {
	case GeneZero:
		return "0"
	case GeneOne:
		return "1"
	case GeneTwo:
		return "2"

	default:
		return "Illegal selection"
	}
}

// traitIndex maps a trait outcome onto the trait axis of the fixed-size
// probability tables and accumulator buckets.
func traitIndex(trait bool) int {
	if trait {
		return 1
	}
	return 0
}
