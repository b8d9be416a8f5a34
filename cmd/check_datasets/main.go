package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/light-bringer/mldatasets/internal/app/dataset/repo"
)

func main() {
	dir := flag.String("output", "data/output", "Directory holding the published tables and run_summary.json")
	flag.Parse()

	summary, err := repo.ReadSummary(*dir)
	if err != nil {
		log.Fatalf("Failed to read summary: %v", err)
	}

	fmt.Printf("Run %s (%s - %s)\n", summary.RunID,
		summary.StartedAt.Format("2006-01-02 15:04:05"), summary.FinishedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Inputs: %d sales, %d products, %d waste records, %d skipped rows\n\n",
		summary.Inputs.Sales, summary.Inputs.Products, summary.Inputs.Waste, summary.Inputs.Warnings)

	problems := 0
	for i, report := range summary.Tables {
		if report.Failed() {
			fmt.Printf("%d. %s - FAILED: %s\n", i+1, report.Name, report.Error)
			problems++
			continue
		}

		rows, err := repo.CountRows(*dir, report.Name)
		if err != nil {
			fmt.Printf("%d. %s - unreadable: %v\n", i+1, report.Name, err)
			problems++
			continue
		}
		if rows != report.Rows {
			fmt.Printf("%d. %s - row mismatch (summary: %d, file: %d)\n", i+1, report.Name, report.Rows, rows)
			problems++
			continue
		}

		fmt.Printf("%d. %s - %d rows (join misses: %d, empty input: %v)\n",
			i+1, report.Name, rows, report.JoinMisses, report.EmptyInput)
	}

	if problems > 0 {
		fmt.Printf("\n%d table(s) need attention\n", problems)
		os.Exit(1)
	}
	fmt.Println("\nAll tables verified!")
}
