package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coolbeans/agendex/pkg/consolidate"
	"github.com/coolbeans/agendex/pkg/ingest"
	"github.com/coolbeans/agendex/pkg/mojibake"
	"github.com/coolbeans/agendex/pkg/title"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "agendex",
		Short: "Health-center agenda consolidator",
		Long: `Agendex normalizes the agenda spreadsheets exported by each health
center, repairs their text encoding, decomposes free-text agenda titles
into physician, specialty and shift type, and consolidates everything
into one table exported as CSV and XLSX.`,
		Version: version,
	}

	rootCmd.AddCommand(consolidateCmd())
	rootCmd.AddCommand(titleCmd())
	rootCmd.AddCommand(reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func consolidateCmd() *cobra.Command {
	var outPath string
	var tabularPath string
	var noXLSX bool

	cmd := &cobra.Command{
		Use:   "consolidate [directory]",
		Short: "Parse every agenda export in a directory and write the consolidated table",
		Long: `Parse every agenda export in a directory and write the consolidated table.

The directory is scanned for .xlsx/.xls files; each file is routed to an
adapter by its name. The tabular CSV export, when present, is picked up
from next to the directory unless --hcsi points elsewhere.

Example:
  agendex consolidate agendas
  agendex consolidate agendas --out salida/consolidado.csv --no-xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "agendas"
			if len(args) > 0 {
				dir = args[0]
			}
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("agenda directory %s not found", dir)
			}
			if tabularPath == "" {
				tabularPath = ingest.DefaultTabularPath(dir)
			}

			batches, err := ingest.ProcessDirectory(dir, tabularPath, title.NewDecomposer(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			records := consolidate.Consolidate(batches...)

			if err := consolidate.ExportCSV(records, outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CSV exportado a: %s\n", outPath)

			if !noXLSX {
				xlsxPath := consolidate.XLSXPath(outPath)
				if err := consolidate.ExportXLSX(records, xlsxPath); err != nil {
					// The CSV is the interchange artifact; the workbook is a
					// courtesy copy and must not fail the run.
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: XLSX no exportado: %v\n", err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "XLSX exportado a: %s\n", xlsxPath)
				}
			}

			consolidate.PrintReport(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "agendas_consolidadas.csv", "output CSV path")
	cmd.Flags().StringVar(&tabularPath, "hcsi", "", "path to the tabular CSV export (default: sibling of the directory)")
	cmd.Flags().BoolVar(&noXLSX, "no-xlsx", false, "skip the XLSX review export")
	return cmd
}

func titleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title [text]",
		Short: "Decompose one agenda title, for debugging the extraction cascade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repaired := mojibake.Scrub(mojibake.Repair(args[0]))
			components := title.NewDecomposer().Decompose(repaired)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "texto reparado: %s\n", repaired)
			fmt.Fprintf(out, "doctor:         %s\n", components.Doctor)
			fmt.Fprintf(out, "especialidad:   %s\n", components.Specialty)
			fmt.Fprintf(out, "tipo de turno:  %s\n", components.Shift)
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [csv]",
		Short: "Print the summary report for an already consolidated CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := consolidate.ReadCSV(args[0])
			if err != nil {
				return err
			}
			consolidate.PrintReport(cmd.OutOrStdout(), records)
			return nil
		},
	}
}
