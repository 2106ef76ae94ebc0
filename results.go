package heredity

import (
	"fmt"
	"io"
	"sort"

	"github.com/carbocation/pfx"
)

// Results maps each person's name to their normalized marginal distributions.
type Results map[string]Distribution

// GeneProbability returns the person's marginal probability of carrying g
// copies of the gene.
func (r Results) GeneProbability(name string, g GeneState) float64 {
	return r[name].Gene[g]
}

// TraitProbability returns the person's marginal probability of the trait
// outcome.
func (r Results) TraitProbability(name string, trait bool) float64 {
	return r[name].Trait[traitIndex(trait)]
}

// WriteText writes a human-readable report of every person's distributions,
// people in name order, four decimal places.
func (r Results) WriteText(w io.Writer) error {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := r[name]
		if _, err := fmt.Fprintf(w, "%s:\n  Gene:\n", name); err != nil {
			return pfx.Err(err)
		}
		for g := NGeneStates - 1; g >= 0; g-- {
			if _, err := fmt.Fprintf(w, "    %d: %.4f\n", g, d.Gene[g]); err != nil {
				return pfx.Err(err)
			}
		}
		if _, err := fmt.Fprintf(w, "  Trait:\n    True: %.4f\n    False: %.4f\n", d.Trait[1], d.Trait[0]); err != nil {
			return pfx.Err(err)
		}
	}

	return nil
}
