package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
)

// catalog-validate checks a health-department catalog workbook before it is
// deployed, and can write a blank template for a new one.
func main() {
	workbookPath := flag.String("workbook", "", "path to a catalog .xlsx workbook (default: validate the compiled-in catalogs)")
	templatePath := flag.String("write-template", "", "write a blank workbook template to this path and exit")
	flag.Parse()

	if *templatePath != "" {
		if err := catalog.WriteTemplate(*templatePath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Template written to %s\n", *templatePath)
		return
	}

	var cat *catalog.Catalog
	var err error
	if *workbookPath != "" {
		cat, err = catalog.LoadWorkbook(*workbookPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load workbook: %v\n", err)
			os.Exit(1)
		}
	} else {
		cat = catalog.NewDefault()
	}

	if err := cat.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Catalog valid: %d symptoms, %d conditions, %d occupational conditions\n",
		len(cat.Symptoms()), len(cat.Conditions()), len(cat.OccupationalConditions()))
}
