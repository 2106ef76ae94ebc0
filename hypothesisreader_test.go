package heredity

import (
	"fmt"
	"testing"
)

func testPedigree(t *testing.T) *Pedigree {
	t.Helper()

	p, err := BuildPedigree([]Record{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: true, TraitKnown: true},
		{Name: "Lily"},
	})
	if err != nil {
		t.Fatal(err)
	}

	return p
}

// assignmentKey flattens an assignment into a comparable string for
// uniqueness checks.
func assignmentKey(p *Pedigree, a Assignment) string {
	key := ""
	for _, name := range p.Names() {
		key += fmt.Sprintf("%s=%s/%t;", name, a[name].Gene, a[name].Trait)
	}
	return key
}

func TestHypothesisReaderCount(t *testing.T) {
	p := testPedigree(t)

	hr := p.NewHypothesisReader()

	// 3 people, 2 with unknown trait: 3^3 * 2^2
	if got := hr.Count(); got != 108 {
		t.Fatalf("Count() is %d, expected 108", got)
	}

	seen := make(map[string]bool)
	n := 0
	for a := hr.Read(); a != nil; a = hr.Read() {
		n++

		if len(a) != p.Size() {
			t.Fatalf("Assignment covers %d people, expected %d", len(a), p.Size())
		}

		// Observed evidence must be pinned
		if !a["James"].Trait {
			t.Fatal("Yielded an assignment that violates James's observed trait")
		}

		key := assignmentKey(p, a)
		if seen[key] {
			t.Fatalf("Assignment yielded twice: %s", key)
		}
		seen[key] = true
	}

	if n != 108 {
		t.Errorf("Read %d assignments, expected 108", n)
	}
}

func TestHypothesisReaderDeterminism(t *testing.T) {
	p := testPedigree(t)

	first := p.NewHypothesisReader()
	second := p.NewHypothesisReader()

	for {
		a, b := first.Read(), second.Read()
		if a == nil || b == nil {
			if a != nil || b != nil {
				t.Fatal("Readers exhausted at different points")
			}
			break
		}

		if assignmentKey(p, a) != assignmentKey(p, b) {
			t.Fatalf("Enumeration order differs between runs: %v vs %v", a, b)
		}
	}
}

func TestStridedHypothesisReaderPartitions(t *testing.T) {
	p := testPedigree(t)

	const stride = 5
	seen := make(map[string]int)
	total := 0
	for offset := uint64(0); offset < stride; offset++ {
		hr, err := p.NewStridedHypothesisReader(offset, stride)
		if err != nil {
			t.Fatal(err)
		}

		for a := hr.Read(); a != nil; a = hr.Read() {
			seen[assignmentKey(p, a)]++
			total++
		}
	}

	if total != 108 {
		t.Errorf("Partitions yielded %d assignments, expected 108", total)
	}
	for key, count := range seen {
		if count != 1 {
			t.Errorf("Assignment %s yielded %d times across partitions", key, count)
		}
	}
}

func TestStridedHypothesisReaderBadArguments(t *testing.T) {
	p := testPedigree(t)

	if _, err := p.NewStridedHypothesisReader(0, 0); err == nil {
		t.Error("Expected an error for zero stride")
	}
	if _, err := p.NewStridedHypothesisReader(3, 3); err == nil {
		t.Error("Expected an error for offset >= stride")
	}
}
