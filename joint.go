package heredity

// JointProbability computes the probability of one complete assignment under
// the inheritance model: the product over every person of that person's gene
// factor and trait factor.
//
// A founder's gene factor is the prior for their hypothesized gene count. A
// person with recorded parents instead gets the probability of inheriting
// exactly that count, composed from each parent's transmission probability:
// both parents transmit for two copies, neither transmits for zero, and one
// copy arrives in either of the two single-transmission ways. The trait
// factor is always TraitGivenGene for the person's own gene count; trait
// expression depends on parentage only through the gene.
func JointProbability(p *Pedigree, tables Tables, a Assignment) float64 {
	joint := 1.0

	for _, name := range p.names {
		person := p.people[name]
		state := a[name]

		if !person.HasParents() {
			joint *= tables.GenePrior[state.Gene]
		} else {
			pm := tables.transmission(a[person.Mother].Gene)
			pf := tables.transmission(a[person.Father].Gene)

			switch state.Gene {
			case GeneTwo:
				joint *= pm * pf
			case GeneOne:
				joint *= pm*(1-pf) + (1-pm)*pf
			default:
				joint *= (1 - pm) * (1 - pf)
			}
		}

		joint *= tables.TraitGivenGene[state.Gene][traitIndex(state.Trait)]
	}

	return joint
}
