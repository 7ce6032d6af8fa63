package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"delegates/internal/aggregator"
	"delegates/internal/formatter"
	"delegates/internal/loader"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Render the statistics and province roster as markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		return runSummary(e)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write enriched records, aggregate view and map markers as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		return runExport(e)
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active province and domain catalog as YAML",
	Long: `Prints the catalog in the format accepted by --catalog, so the
built-in one can be dumped, edited and loaded back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		catalog, err := e.catalog()
		if err != nil {
			return err
		}

		return loader.EncodeCatalog(os.Stdout, catalog)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the detail card of one delegate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		report, err := e.report()
		if err != nil {
			return err
		}

		d, ok := aggregator.FindByName(report.Records, args[0])
		if !ok {
			return fmt.Errorf("no delegate named %q", args[0])
		}

		return e.write([]byte(formatter.RenderDelegate(d)))
	},
}
