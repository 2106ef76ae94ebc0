package heredity

// Record is one row of evidence about a single person, in the shape produced
// by the CSV loader and stored in .pdi index files: a name, optional parent
// names, and an optionally observed trait. Mother and Father must either both
// be set or both be empty.
type Record struct {
	Name   string `db:"name"`
	Mother string `db:"mother"`
	Father string `db:"father"`

	// Trait is meaningful only when TraitKnown is true.
	Trait      bool `db:"trait"`
	TraitKnown bool `db:"trait_known"`
}

// Person is one resolved node of a Pedigree. Parent links are name-based and
// are guaranteed by BuildPedigree to resolve within the same Pedigree.
type Person struct {
	Name   string
	Mother string
	Father string

	Trait      bool
	TraitKnown bool
}

// HasParents reports whether the person's parents are recorded. BuildPedigree
// rejects half-specified parentage, so either both are known or neither is.
func (p Person) HasParents() bool {
	return p.Mother != ""
}
