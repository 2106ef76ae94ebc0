package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Accumulator tallies, per person, the probability mass observed for each
// gene count and each trait outcome across the enumerated hypotheses. One
// Accumulator belongs to exactly one inference pass; accumulation is a pure
// additive fold, so partial accumulators built from disjoint slices of the
// hypothesis space can be merged in any order.
type Accumulator struct {
	totals map[string]*Distribution
}

// Distribution holds one person's (possibly unnormalized) probability mass
// over gene counts and trait outcomes. Gene is indexed by GeneState; Trait is
// indexed by traitIndex, i.e. Trait[0] is the mass for not expressing the
// trait and Trait[1] for expressing it.
type Distribution struct {
	Gene  [NGeneStates]float64
	Trait [2]float64
}

// NewAccumulator returns a zeroed accumulator with a bucket for every person
// in the pedigree.
func NewAccumulator(p *Pedigree) *Accumulator {
	acc := &Accumulator{
		totals: make(map[string]*Distribution, p.Size()),
	}
	for _, name := range p.names {
		acc.totals[name] = &Distribution{}
	}

	return acc
}

// Add folds one hypothesis into the running totals: every person's bucket for
// their assigned gene count and their assigned trait outcome gains the
// hypothesis's joint probability.
func (acc *Accumulator) Add(a Assignment, joint float64) {
	for name, state := range a {
		d := acc.totals[name]
		d.Gene[state.Gene] += joint
		d.Trait[traitIndex(state.Trait)] += joint
	}
}

// Merge adds every bucket of other into acc elementwise. Both accumulators
// must have been built for the same pedigree.
func (acc *Accumulator) Merge(other *Accumulator) {
	for name, od := range other.totals {
		d := acc.totals[name]
		for g := range d.Gene {
			d.Gene[g] += od.Gene[g]
		}
		for i := range d.Trait {
			d.Trait[i] += od.Trait[i]
		}
	}
}

// Normalize rescales each person's gene buckets and, independently, trait
// buckets so that each sums to 1, and returns the result. Zero total mass in
// either axis cannot occur under a valid model (the prior is strictly
// positive everywhere) and is reported as ErrImpossibleEvidence rather than
// allowed to divide to NaN.
func (acc *Accumulator) Normalize() (Results, error) {
	results := make(Results, len(acc.totals))

	for name, d := range acc.totals {
		var geneSum, traitSum float64
		for _, mass := range d.Gene {
			geneSum += mass
		}
		for _, mass := range d.Trait {
			traitSum += mass
		}
		if geneSum <= 0 || traitSum <= 0 {
			return nil, fmt.Errorf("%w: %q received no probability mass", ErrImpossibleEvidence, name)
		}

		normalized := Distribution{}
		for g, mass := range d.Gene {
			normalized.Gene[g] = mass / geneSum
		}
		for i, mass := range d.Trait {
			normalized.Trait[i] = mass / traitSum
		}
		results[name] = normalized
	}

	return results, nil
}

// Infer runs the full pipeline for one pedigree: enumerate every
// evidence-consistent assignment, score each with JointProbability, fold the
// scores into an accumulator, and normalize into per-person marginals.
func Infer(p *Pedigree, tables Tables) (Results, error) {
	if err := tables.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	acc := NewAccumulator(p)

	hr := p.NewHypothesisReader()
	for a := hr.Read(); a != nil; a = hr.Read() {
		acc.Add(a, JointProbability(p, tables, a))
	}

	results, err := acc.Normalize()
	if err != nil {
		return nil, err
	}

	return results, nil
}
