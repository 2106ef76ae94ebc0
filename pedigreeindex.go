package heredity

import (
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PDIIndex wraps a pedigree index (.pdi) file: a SQLite database holding the
// evidence records of one or more named pedigrees, so that families can be
// stored, listed, and re-run without re-parsing CSV evidence.
type PDIIndex struct {
	DB       *sqlx.DB
	Metadata *PDIMetadata
}

func (pdi *PDIIndex) Close() error {
	return pdi.DB.Close()
}

// RecordIndex conforms to the rows of the SQLite table "Record" in .pdi
// files, and can be easily parsed with sqlx.
type RecordIndex struct {
	Pedigree   string
	Name       string
	Mother     string
	Father     string
	Trait      bool `db:"trait"`
	TraitKnown bool `db:"trait_known"`
}

// PDIMetadata conforms to the rows of the SQLite table "Metadata" in .pdi
// files.
type PDIMetadata struct {
	Pedigree          string
	NPeople           int  `db:"n_people"`
	IndexCreationTime Time `db:"index_creation_time"`
}

const pdiSchema = `
CREATE TABLE IF NOT EXISTS Metadata (
	pedigree TEXT NOT NULL,
	n_people INTEGER NOT NULL,
	index_creation_time INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS Record (
	pedigree TEXT NOT NULL,
	name TEXT NOT NULL,
	mother TEXT NOT NULL,
	father TEXT NOT NULL,
	trait INTEGER NOT NULL,
	trait_known INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS record_pedigree ON Record (pedigree);
`

// StorePedigree writes one named pedigree's evidence records into the index,
// replacing any prior entry under the same name. The records are validated by
// building them into a Pedigree first, so the index only ever holds record
// sets that BuildPedigree accepts.
func (pdi *PDIIndex) StorePedigree(name string, records []Record) error {
	if _, err := BuildPedigree(records); err != nil {
		return err
	}

	if _, err := pdi.DB.Exec(pdiSchema); err != nil {
		return pfx.Err(err)
	}

	tx, err := pdi.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM Record WHERE pedigree = ?", name); err != nil {
		return pfx.Err(err)
	}
	if _, err := tx.Exec("DELETE FROM Metadata WHERE pedigree = ?", name); err != nil {
		return pfx.Err(err)
	}

	if _, err := tx.Exec(
		"INSERT INTO Metadata (pedigree, n_people, index_creation_time) VALUES (?, ?, ?)",
		name, len(records), time.Now().Unix(),
	); err != nil {
		return pfx.Err(err)
	}

	for _, r := range records {
		if _, err := tx.Exec(
			"INSERT INTO Record (pedigree, name, mother, father, trait, trait_known) VALUES (?, ?, ?, ?, ?, ?)",
			name, r.Name, r.Mother, r.Father, r.Trait, r.TraitKnown,
		); err != nil {
			return pfx.Err(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Pedigrees lists the names of the pedigrees stored in the index.
func (pdi *PDIIndex) Pedigrees() ([]string, error) {
	var names []string
	if err := pdi.DB.Select(&names, "SELECT pedigree FROM Metadata ORDER BY pedigree ASC"); err != nil {
		return nil, pfx.Err(err)
	}

	return names, nil
}

// Records reads one stored pedigree's evidence records back out of the index
// in the shape consumed by BuildPedigree.
func (pdi *PDIIndex) Records(pedigree string) ([]Record, error) {
	rows, err := pdi.DB.Queryx("SELECT * FROM Record WHERE pedigree = ? ORDER BY name ASC", pedigree)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var records []Record
	var row RecordIndex
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}
		records = append(records, Record{
			Name:       row.Name,
			Mother:     row.Mother,
			Father:     row.Father,
			Trait:      row.Trait,
			TraitKnown: row.TraitKnown,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if records == nil {
		return nil, pfx.Err(fmt.Errorf("no pedigree named %q in the index", pedigree))
	}

	return records, nil
}

// WhichSQLiteDriver reports which SQLite driver this build selected.
func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
