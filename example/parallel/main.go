package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

// Scores the hypothesis space in parallel: each worker walks a strided slice
// of the enumeration with its own accumulator, and the partial accumulators
// are merged before normalization. The result is identical to a serial run.
func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to process. May be a gs:// URL.")
	snapshot := flag.String("snapshot", "", "Optional filename to write a compressed snapshot of the results to")
	workers := flag.Int("workers", runtime.NumCPU(), "Number of scoring workers")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	records, err := heredity.LoadRecords(*path)
	if err != nil {
		log.Fatalln(err)
	}

	pedigree, err := heredity.BuildPedigree(records)
	if err != nil {
		log.Fatalln(err)
	}

	tables := heredity.DefaultTables()
	if err := tables.Validate(); err != nil {
		log.Fatalln(err)
	}

	log.Println("Launching", *workers, "workers over", pedigree.NewHypothesisReader().Count(), "hypotheses")

	partials := make(chan *heredity.Accumulator, *workers)
	var wg sync.WaitGroup
	for w := 0; w < *workers; w++ {
		hr, err := pedigree.NewStridedHypothesisReader(uint64(w), uint64(*workers))
		if err != nil {
			log.Fatalln(err)
		}

		wg.Add(1)
		go func(hr *heredity.HypothesisReader) {
			defer wg.Done()

			acc := heredity.NewAccumulator(pedigree)
			for a := hr.Read(); a != nil; a = hr.Read() {
				acc.Add(a, heredity.JointProbability(pedigree, tables, a))
			}
			partials <- acc
		}(hr)
	}
	wg.Wait()
	close(partials)

	acc := heredity.NewAccumulator(pedigree)
	for partial := range partials {
		acc.Merge(partial)
	}

	results, err := acc.Normalize()
	if err != nil {
		log.Fatalln(err)
	}

	if err := results.WriteText(os.Stdout); err != nil {
		log.Fatalln(err)
	}

	if *snapshot != "" {
		f, err := os.Create(*snapshot)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		if err := results.WriteSnapshot(f); err != nil {
			log.Fatalln(err)
		}
		if err := f.Close(); err != nil {
			log.Fatalln(pfx.Err(err))
		}
		log.Println("Wrote snapshot to", *snapshot)
	}
}
