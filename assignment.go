package heredity

// PersonState is one person's hypothesized gene count and trait outcome
// within a single Assignment.
type PersonState struct {
	Gene  GeneState
	Trait bool
}

// Assignment is one full hypothesis: a gene count and trait outcome for every
// person in the pedigree. Assignments are produced by a HypothesisReader and
// are always consistent with the pedigree's observed evidence.
type Assignment map[string]PersonState
