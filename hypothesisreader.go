package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// HypothesisReader lazily enumerates every assignment of gene count and trait
// outcome to every person in a pedigree that is consistent with the observed
// evidence: gene counts range freely over {0, 1, 2} for everyone, trait
// outcomes range over {false, true} for unobserved people and are pinned to
// the observed value otherwise. Exactly 3^n × 2^u assignments are produced
// for n people of whom u have unobserved traits, each one exactly once.
//
// The enumeration order is deterministic for a fixed pedigree but is not part
// of the contract; callers must not depend on it.
type HypothesisReader struct {
	p *Pedigree

	// radixes holds, per person in canonical order, the number of states each
	// axis takes: 3 for every gene axis, 2 or 1 for each trait axis.
	radixes []uint64

	cursor uint64
	stride uint64
	total  uint64
}

// NewHypothesisReader returns a reader over every evidence-consistent
// assignment for the pedigree.
func (p *Pedigree) NewHypothesisReader() *HypothesisReader {
	hr := &HypothesisReader{
		p:      p,
		stride: 1,
	}

	// Two interleaved axes per person: gene first, then trait.
	hr.radixes = make([]uint64, 0, 2*p.Size())
	hr.total = 1
	for _, name := range p.names {
		hr.radixes = append(hr.radixes, NGeneStates)
		hr.total *= NGeneStates

		traitStates := uint64(2)
		if p.people[name].TraitKnown {
			traitStates = 1
		}
		hr.radixes = append(hr.radixes, traitStates)
		hr.total *= traitStates
	}

	return hr
}

// NewStridedHypothesisReader returns a reader that yields the subsequence of
// assignments at positions offset, offset+stride, offset+2×stride, ... of the
// full enumeration. The readers for offsets 0..stride-1 at a common stride
// partition the hypothesis space exactly, which is the supported way to fan
// inference out across workers (accumulation is order-independent).
func (p *Pedigree) NewStridedHypothesisReader(offset, stride uint64) (*HypothesisReader, error) {
	if stride == 0 {
		return nil, pfx.Err(fmt.Errorf("stride must be positive"))
	}
	if offset >= stride {
		return nil, pfx.Err(fmt.Errorf("offset %d must be less than stride %d", offset, stride))
	}

	hr := p.NewHypothesisReader()
	hr.cursor = offset
	hr.stride = stride

	return hr, nil
}

// Count returns the total number of assignments in the full (unstrided)
// enumeration: 3^n × 2^u.
func (hr *HypothesisReader) Count() uint64 {
	return hr.total
}

// Read returns the next assignment, or nil when the enumeration is exhausted.
// Each returned Assignment is freshly allocated and owned by the caller.
func (hr *HypothesisReader) Read() Assignment {
	if hr.cursor >= hr.total {
		return nil
	}

	a := hr.assignmentAt(hr.cursor)
	hr.cursor += hr.stride

	return a
}

// assignmentAt decodes the index'th point of the mixed-radix hypothesis space
// into an Assignment. Gene and trait digits alternate per person, people in
// canonical order, earlier digits varying fastest.
func (hr *HypothesisReader) assignmentAt(index uint64) Assignment {
	a := make(Assignment, hr.p.Size())

	for i, name := range hr.p.names {
		gene := GeneState(index % hr.radixes[2*i])
		index /= hr.radixes[2*i]

		person := hr.p.people[name]
		trait := person.Trait
		if !person.TraitKnown {
			trait = index%2 == 1
			index /= 2
		}

		a[name] = PersonState{Gene: gene, Trait: trait}
	}

	return a
}
