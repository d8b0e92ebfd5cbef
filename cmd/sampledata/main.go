// Command sampledata prints or exports the deterministic sample population
// used by the population table.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/village-dashboard/internal/export"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/services"
)

type options struct {
	count      int
	year       string
	format     string
	outputPath string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sampledata",
		Short: "Generate the sample village population",
		Long: `sampledata generates the same population records the dashboard shows in
its population table. Output is identical for identical --count and --year.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, stdout)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", services.PopulationTableSize, "Number of records")
	cmd.Flags().StringVarP(&opts.year, "year", "y", string(models.LatestYear()), "Dataset year")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, csv, json, xlsx")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func run(opts *options, stdout io.Writer) error {
	records := services.GenerateSamplePopulationData(opts.count, models.YearKey(opts.year))

	out := stdout
	if opts.outputPath != "" {
		f, err := os.Create(opts.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	spec := models.TableSpec{Columns: models.PopulationColumns}
	rows := models.PopulationRows(records)

	switch strings.ToLower(opts.format) {
	case "table":
		return writeTable(out, rows)
	case "csv":
		return export.WriteCSV(out, spec, rows)
	case "xlsx":
		return export.WriteXLSX(out, "Penduduk "+opts.year, spec, rows)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("invalid format: %s (must be table, csv, json, or xlsx)", opts.format)
	}
}

func writeTable(w io.Writer, rows []models.TableRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(models.PopulationColumns, "\t"))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
