// Package heredity performs exact probabilistic inference over a single-gene
// inheritance model: given a pedigree with partially observed trait status, it
// computes every family member's exact marginal distribution over gene-copy
// count {0, 1, 2} and over trait expression {true, false} by enumerating all
// evidence-consistent assignments and accumulating their joint probabilities.
package heredity

import (
	"fmt"
	"sort"
)

// Pedigree is the static family graph for one inference run: every known
// person, their parent links, and their observed trait evidence. A Pedigree
// is immutable after BuildPedigree returns it.
type Pedigree struct {
	people map[string]Person

	// names holds every person name sorted lexicographically. All iteration
	// over the pedigree follows this order so that runs are reproducible.
	names []string

	// unknownTrait counts persons with unobserved trait status.
	unknownTrait int
}

// BuildPedigree validates a set of evidence records and assembles them into a
// Pedigree. It fails fast with ErrMalformedRecord or ErrCyclicAncestry before
// any inference can run; no partial Pedigree is ever returned.
func BuildPedigree(records []Record) (*Pedigree, error) {
	p := &Pedigree{
		people: make(map[string]Person, len(records)),
	}

	for _, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: record with empty name", ErrMalformedRecord)
		}
		if _, exists := p.people[r.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate record for %q", ErrMalformedRecord, r.Name)
		}
		if (r.Mother == "") != (r.Father == "") {
			return nil, fmt.Errorf("%w: %q names only one parent; parents must be given both or neither", ErrMalformedRecord, r.Name)
		}

		p.people[r.Name] = Person(r)
		p.names = append(p.names, r.Name)
		if !r.TraitKnown {
			p.unknownTrait++
		}
	}
	sort.Strings(p.names)

	for _, person := range p.people {
		for _, parent := range []string{person.Mother, person.Father} {
			if parent == "" {
				continue
			}
			if _, known := p.people[parent]; !known {
				return nil, fmt.Errorf("%w: %q references unknown parent %q", ErrMalformedRecord, person.Name, parent)
			}
		}
	}

	if err := p.checkAcyclic(); err != nil {
		return nil, err
	}

	return p, nil
}

// checkAcyclic confirms that the parent relation is a forest: following
// mother/father links from any person never revisits that person.
func (p *Pedigree) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(p.people))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %q is their own ancestor", ErrCyclicAncestry, name)
		}

		state[name] = visiting
		person := p.people[name]
		if person.HasParents() {
			if err := visit(person.Mother); err != nil {
				return err
			}
			if err := visit(person.Father); err != nil {
				return err
			}
		}
		state[name] = done

		return nil
	}

	for _, name := range p.names {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}

// Person returns the named person and whether they exist in the pedigree.
func (p *Pedigree) Person(name string) (Person, bool) {
	person, ok := p.people[name]
	return person, ok
}

// Names returns every person name in the pedigree's canonical (sorted) order.
// The returned slice is shared; callers must not modify it.
func (p *Pedigree) Names() []string {
	return p.names
}

// Size returns the number of people in the pedigree.
func (p *Pedigree) Size() int {
	return len(p.names)
}

// UnknownTraits returns the number of people whose trait status is unobserved.
func (p *Pedigree) UnknownTraits() int {
	return p.unknownTrait
}
