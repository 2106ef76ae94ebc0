package heredity

import (
	"bytes"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := testPedigree(t)

	results, err := Infer(p, DefaultTables())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := results.WriteSnapshot(&buf); err != nil {
		t.Fatal(err)
	}

	restored, err := ReadSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if len(restored) != len(results) {
		t.Fatalf("Restored %d people, expected %d", len(restored), len(results))
	}
	for name, d := range results {
		if restored[name] != d {
			t.Errorf("%s: restored %+v, expected %+v", name, restored[name], d)
		}
	}
}

func TestReadSnapshotRejectsGarbage(t *testing.T) {
	if _, err := ReadSnapshot(bytes.NewReader([]byte("not a snapshot"))); err == nil {
		t.Error("Expected an error for non-snapshot data")
	}
}
