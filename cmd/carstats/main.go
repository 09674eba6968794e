// carstats prints the dashboard metrics for one selection in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dashboard"
	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/db"
)

func main() {
	config.Init()

	dataPath := flag.String("data", config.DataPath, "CSV file or sqlite database with the listings")
	tableName := flag.String("table", config.DataTable, "table to read when -data is a sqlite database")
	brand := flag.String("brand", "", "brand to report on (default: first brand in the dataset)")
	transmission := flag.String("transmission", dataset.AllTransmissions, "transmission type, or All")
	raw := flag.Bool("raw", false, "print the matching rows")
	flag.Parse()

	loader, err := dataset.NewLoader(dataset.NewSource(*dataPath, *tableName, db.OpenReadOnly))
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	table, err := loader.Load(context.Background())
	if err != nil {
		var notFound *dataset.DataNotFoundError
		if errors.As(err, &notFound) {
			color.Red("Error: data file not found at %s", notFound.Path)
		} else {
			color.Red("Error: %v", err)
		}
		os.Exit(1)
	}

	v := dashboard.Resolve(table, dashboard.Selection{}, dashboard.Selection{
		Brand:        *brand,
		Transmission: *transmission,
		ShowRaw:      *raw,
	})
	if *brand != "" && v.Selection.Brand != *brand {
		color.Yellow("Brand %q not found, showing %s", *brand, v.Selection.Brand)
	}
	report(os.Stdout, v)
}

func report(w io.Writer, v dashboard.View) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(w, "\n=== %s / %s ===\n", v.Selection.Brand, v.Selection.Transmission)

	summary := tablewriter.NewWriter(w)
	summary.SetHeader([]string{"Average Price", "Total Cars Available", "Average Mileage"})
	summary.Append([]string{v.Summary.Price(), v.Summary.Cars(), v.Summary.Mileage()})
	summary.Render()

	if !v.Selection.ShowRaw {
		return
	}

	color.New(color.FgYellow).Fprintf(w, "\nRaw data (%d rows)\n", v.Filtered.Len())
	if v.Filtered.Len() == 0 {
		fmt.Fprintln(w, "No listings match this selection.")
		return
	}
	rows := tablewriter.NewWriter(w)
	rows.SetHeader(v.Filtered.Columns())
	rows.AppendBulk(v.Filtered.Rows())
	rows.Render()
}
