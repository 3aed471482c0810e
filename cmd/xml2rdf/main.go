package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/xml2rdf/cmd/xml2rdf/commands"
	"github.com/teranos/xml2rdf/logger"
)

var rootCmd = &cobra.Command{
	Use:   "xml2rdf",
	Short: "Converts XML data into RDF format",
	Long: `xml2rdf - Convert arbitrary XML documents into RDF triples.

Walks schema-less XML and emits one triple per attribute, per non-blank
text run, and per parent-child element link, with resource IRIs derived
deterministically from element paths under a configurable namespace.

Available commands:
  convert - Convert XML files into N-Triples or an output file
  version - Show build information

Examples:
  xml2rdf convert --xml data.xml                          # Triples on stdout
  xml2rdf convert --xml a.xml --xml b.xml -o out.nt       # Two files, one output
  xml2rdf convert -n http://example.com/ns# --xml data.xml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize global logger before any command runs
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(verbosity, jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON lines on stderr")

	// Add commands
	rootCmd.AddCommand(commands.ConvertCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
