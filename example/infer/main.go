package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to process (name,mother,father,trait). May be a gs:// URL.")
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

	log.Println("Opening pedigree:", *path)
	records, err := heredity.LoadRecords(*path)
	if err != nil {
		log.Fatalln(err)
	}

	pedigree, err := heredity.BuildPedigree(records)
	if err != nil {
		log.Fatalln(err)
	}

	hr := pedigree.NewHypothesisReader()
	log.Println("Scoring", hr.Count(), "hypotheses for", pedigree.Size(), "people")

	results, err := heredity.Infer(pedigree, heredity.DefaultTables())
	if err != nil {
		log.Fatalln(err)
	}

	if err := results.WriteText(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
