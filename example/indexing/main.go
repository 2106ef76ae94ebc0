package main

import (
	"flag"
	"fmt"
	"log"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/heredity"
	"github.com/carbocation/pfx"
)

func main() {
	path := flag.String("pedigree", "", "Filename of the pedigree CSV to add to the index (blank to only inspect the index)")
	idxPath := flag.String("pdi", "", "Filename of the pdi (index) file to process")
	name := flag.String("name", "", "Name under which to store the pedigree (defaults to the CSV basename)")
	flag.Parse()

	if *idxPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pdi file found")
	}

	for _, p := range []*string{path, idxPath} {
		if strings.HasPrefix(*p, "~/") {
			usr, err := user.Current()
			if err != nil {
				log.Fatalln(pfx.Err(err))
			}
			*p = filepath.Join(usr.HomeDir, (*p)[2:])
		}
	}

	log.Println("Using the", heredity.WhichSQLiteDriver(), "SQLite driver")

	pdi, err := heredity.OpenPDI(*idxPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer pdi.Close()

	if *path != "" {
		if *name == "" {
			*name = strings.TrimSuffix(filepath.Base(*path), filepath.Ext(*path))
		}

		records, err := heredity.LoadRecords(*path)
		if err != nil {
			log.Fatalln(err)
		}

		if err := pdi.StorePedigree(*name, records); err != nil {
			log.Fatalln(err)
		}
		log.Println("Stored", len(records), "records under", *name)
	}

	pedigrees, err := pdi.Pedigrees()
	if err != nil {
		log.Fatalln(err)
	}

	for _, pedigreeName := range pedigrees {
		records, err := pdi.Records(pedigreeName)
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Printf("%s (%d people):\n", pedigreeName, len(records))
		for _, r := range records {
			trait := "-"
			if r.TraitKnown {
				trait = "0"
				if r.Trait {
					trait = "1"
				}
			}
			fmt.Printf("  %s mother=%q father=%q trait=%s\n", r.Name, r.Mother, r.Father, trait)
		}
	}

	log.Println("Saw", len(pedigrees), "pedigrees in the index")
}
