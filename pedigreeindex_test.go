package heredity

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestPDIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.pdi")

	records := []Record{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: true, TraitKnown: true},
		{Name: "Lily"},
	}

	pdi, err := OpenPDI(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := pdi.StorePedigree("family0", records); err != nil {
		t.Fatal(err)
	}
	if err := pdi.Close(); err != nil {
		t.Fatal(err)
	}

	// Re-open so that the metadata read path is exercised too.
	pdi, err = OpenPDI(path)
	if err != nil {
		t.Fatal(err)
	}
	defer pdi.Close()

	if pdi.Metadata.Pedigree != "family0" || pdi.Metadata.NPeople != 3 {
		t.Errorf("Unexpected metadata: %+v", pdi.Metadata)
	}

	pedigrees, err := pdi.Pedigrees()
	if err != nil {
		t.Fatal(err)
	}
	if len(pedigrees) != 1 || pedigrees[0] != "family0" {
		t.Fatalf("Got pedigrees %v, expected [family0]", pedigrees)
	}

	got, err := pdi.Records("family0")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(records) {
		t.Fatalf("Got %d records, expected %d", len(got), len(records))
	}
	// Records come back in name order, which is how they went in.
	for i, expected := range records {
		if got[i] != expected {
			t.Errorf("Record %d is %+v, expected %+v", i, got[i], expected)
		}
	}

	// The stored records must still build and infer.
	p, err := BuildPedigree(got)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Infer(p, DefaultTables()); err != nil {
		t.Fatal(err)
	}
}

func TestPDIStoreRejectsMalformed(t *testing.T) {
	pdi, err := OpenPDI(filepath.Join(t.TempDir(), "bad.pdi"))
	if err != nil {
		t.Fatal(err)
	}
	defer pdi.Close()

	err = pdi.StorePedigree("bad", []Record{
		{Name: "Harry", Mother: "Lily", Father: "James"},
	})
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Got %v, expected ErrMalformedRecord", err)
	}
}

func TestPDIRecordsUnknownPedigree(t *testing.T) {
	pdi, err := OpenPDI(filepath.Join(t.TempDir(), "empty.pdi"))
	if err != nil {
		t.Fatal(err)
	}
	defer pdi.Close()

	if err := pdi.StorePedigree("only", []Record{{Name: "A"}}); err != nil {
		t.Fatal(err)
	}

	if _, err := pdi.Records("missing"); err == nil {
		t.Error("Expected an error for an unknown pedigree name")
	}
}

func TestWhichSQLiteDriver(t *testing.T) {
	if driver := WhichSQLiteDriver(); driver != "sqlite" && driver != "sqlite3" {
		t.Errorf("Unexpected driver %q", driver)
	}
}
