package heredity

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zstd"
)

// snapshotEntry is the serialized form of one person's distributions: gene
// mass keyed by copy count, trait mass keyed by "true"/"false".
type snapshotEntry struct {
	Gene  map[string]float64 `json:"gene"`
	Trait map[string]float64 `json:"trait"`
}

// WriteSnapshot serializes normalized results as zstd-compressed JSON, for
// archiving a run's output alongside its pedigree.
func (r Results) WriteSnapshot(w io.Writer) error {
	entries := make(map[string]snapshotEntry, len(r))
	for name, d := range r {
		entry := snapshotEntry{
			Gene: make(map[string]float64, NGeneStates),
			Trait: map[string]float64{
				"true":  d.Trait[1],
				"false": d.Trait[0],
			},
		}
		for g, mass := range d.Gene {
			entry.Gene[strconv.Itoa(g)] = mass
		}
		entries[name] = entry
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return pfx.Err(err)
	}

	if err := json.NewEncoder(zw).Encode(entries); err != nil {
		zw.Close()
		return pfx.Err(err)
	}

	if err := zw.Close(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReadSnapshot reads results previously written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Results, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer zr.Close()

	var entries map[string]snapshotEntry
	if err := json.NewDecoder(zr).Decode(&entries); err != nil {
		return nil, pfx.Err(err)
	}

	results := make(Results, len(entries))
	for name, entry := range entries {
		d := Distribution{}
		for key, mass := range entry.Gene {
			g, err := strconv.Atoi(key)
			if err != nil || g < 0 || g >= NGeneStates {
				return nil, pfx.Err(fmt.Errorf("snapshot gene key %q for %q is not a copy count", key, name))
			}
			d.Gene[g] = mass
		}
		d.Trait[1] = entry.Trait["true"]
		d.Trait[0] = entry.Trait["false"]
		results[name] = d
	}

	return results, nil
}
