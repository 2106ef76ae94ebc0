package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Tables holds the fixed conditional probability tables of the single-gene
// inheritance model. A Tables value is immutable once constructed and is
// passed explicitly into every computation that needs it.
type Tables struct {
	// GenePrior is the unconditional probability of carrying 0, 1, or 2
	// copies of the gene, indexed by GeneState. Used for founders (persons
	// with no recorded parents). Sums to 1.
	GenePrior [NGeneStates]float64

	// MutationRate is the probability that a transmitted copy flips value in
	// passage from parent to child. The model is symmetric: the same rate
	// converts a transmission into a non-transmission and vice versa.
	MutationRate float64

	// TraitGivenGene is the probability of the trait outcome conditioned on
	// gene count, indexed [GeneState][traitIndex]. Each row sums to 1.
	TraitGivenGene [NGeneStates][2]float64
}

// DefaultTables returns the standard single-gene model constants.
func DefaultTables() Tables {
	return Tables{
		GenePrior:    [NGeneStates]float64{0.96, 0.03, 0.01},
		MutationRate: 0.01,
		TraitGivenGene: [NGeneStates][2]float64{
			GeneZero: {0.99, 0.01},
			GeneOne:  {0.44, 0.56},
			GeneTwo:  {0.35, 0.65},
		},
	}
}

// Validate confirms that the tables describe a well-formed model: rows sum to
// 1 within tolerance, every entry is a probability, and the prior is strictly
// positive everywhere (required for the normalizer's positivity guarantee).
func (t Tables) Validate() error {
	var priorSum float64
	for g, p := range t.GenePrior {
		if p <= 0 || p > 1 {
			return pfx.Err(fmt.Errorf("GenePrior[%d] is %f; must be in (0, 1]", g, p))
		}
		priorSum += p
	}
	if !approxOne(priorSum) {
		return pfx.Err(fmt.Errorf("GenePrior sums to %f; must sum to 1", priorSum))
	}

	if t.MutationRate < 0 || t.MutationRate >= 0.5 {
		return pfx.Err(fmt.Errorf("MutationRate is %f; must be in [0, 0.5)", t.MutationRate))
	}

	for g, row := range t.TraitGivenGene {
		var rowSum float64
		for i, p := range row {
			if p < 0 || p > 1 {
				return pfx.Err(fmt.Errorf("TraitGivenGene[%d][%d] is %f; must be in [0, 1]", g, i, p))
			}
			rowSum += p
		}
		if !approxOne(rowSum) {
			return pfx.Err(fmt.Errorf("TraitGivenGene[%d] sums to %f; must sum to 1", g, rowSum))
		}
	}

	return nil
}

// TraitPrior returns the marginal probability of the trait outcome implied by
// GenePrior and TraitGivenGene, for a founder about whom nothing is observed.
func (t Tables) TraitPrior(trait bool) float64 {
	var p float64
	for g := range t.GenePrior {
		p += t.GenePrior[g] * t.TraitGivenGene[g][traitIndex(trait)]
	}
	return p
}

// transmission is the probability that a parent carrying g copies passes the
// gene to a child, after accounting for mutation. A parent with two copies
// transmits unless the copy mutates; a parent with no copies transmits only
// through mutation; a heterozygous parent transmits a coin flip either way
// (the mutation terms cancel).
func (t Tables) transmission(g GeneState) float64 {
	switch g {
	case GeneTwo:
		return 1 - t.MutationRate
	case GeneOne:
		return 0.5
	default:
		return t.MutationRate
	}
}

const normalizationTolerance = 1e-9

func approxOne(x float64) bool {
	return x > 1-normalizationTolerance && x < 1+normalizationTolerance
}
