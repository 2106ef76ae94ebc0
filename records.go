package heredity

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// ReadRecords parses evidence records from CSV data with the header
// name,mother,father,trait. Mother and father are names or blank; trait is
// "1" (observed true), "0" (observed false), or blank (unobserved). Only the
// row shape is checked here; referential validity is BuildPedigree's job.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}

	fields := make(map[string]int, len(header))
	for i, name := range header {
		fields[name] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := fields[required]; !ok {
			return nil, fmt.Errorf("%w: header is missing the %q column", ErrMalformedRecord, required)
		}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		record := Record{
			Name:   row[fields["name"]],
			Mother: row[fields["mother"]],
			Father: row[fields["father"]],
		}

		switch trait := row[fields["trait"]]; trait {
		case "1":
			record.Trait = true
			record.TraitKnown = true
		case "0":
			record.TraitKnown = true
		case "":
		default:
			return nil, fmt.Errorf("%w: trait value %q for %q is not \"1\", \"0\", or blank", ErrMalformedRecord, trait, record.Name)
		}

		records = append(records, record)
	}

	return records, nil
}

// LoadRecords reads evidence records from a local file path or, with a gs://
// prefix, from a Google Storage object.
func LoadRecords(path string) ([]Record, error) {
	f, err := openPath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return records, nil
}
