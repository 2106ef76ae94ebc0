package heredity

import (
	"errors"
	"strings"
	"testing"
)

const familyCSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 3 {
		t.Fatalf("Got %d records, expected 3", len(records))
	}

	harry := records[0]
	if harry.Name != "Harry" || harry.Mother != "Lily" || harry.Father != "James" || harry.TraitKnown {
		t.Errorf("Unexpected Harry record: %+v", harry)
	}

	james := records[1]
	if !james.TraitKnown || !james.Trait {
		t.Errorf("James's trait should be observed true: %+v", james)
	}

	lily := records[2]
	if !lily.TraitKnown || lily.Trait {
		t.Errorf("Lily's trait should be observed false: %+v", lily)
	}
}

func TestReadRecordsFeedsBuildPedigree(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := BuildPedigree(records); err != nil {
		t.Fatal(err)
	}
}

func TestReadRecordsBadTrait(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("name,mother,father,trait\nA,,,maybe\n"))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Got %v, expected ErrMalformedRecord", err)
	}
}

func TestReadRecordsMissingColumn(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("name,mother,father\nA,,\n"))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Got %v, expected ErrMalformedRecord", err)
	}
}
