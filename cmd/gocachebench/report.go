package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// printReport renders one row per (policy, scenario) pair with its hit
// rate, grouped by policy for readability.
func printReport(w io.Writer, results []result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Scenario", "Hit Rate"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	for _, r := range results {
		table.Append([]string{r.policy, r.scenario, fmt.Sprintf("%.2f%%", r.hitRatePct)})
	}
	table.Render()
}
