package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/semantic"
	"github.com/spf13/cobra"
)

var (
	checkVerbose bool
	checkHints   string
)

var checkCmd = &cobra.Command{
	Use:   "check [ast.json]",
	Short: "Run name analysis and type checking over a JSON-encoded AST",
	Long: `check reads a program's AST from a JSON file, runs name analysis
followed by type checking over it, and reports every diagnostic found.

--hints controls whether non-fatal style warnings (e.g. unused variables)
are reported alongside fatal diagnostics: off (default), normal, or
pedantic. --verbose additionally prints a type-annotated dump of every
statement-level expression once analysis succeeds.

Examples:
  # Check a program
  cmmcheck check program.json

  # Check with verbose pass/fail summary and a type dump
  cmmcheck check program.json --verbose

  # Also report unused variables
  cmmcheck check program.json --hints normal`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "verbose output")
	checkCmd.Flags().StringVar(&checkHints, "hints", "off", "style hint level: off, normal, pedantic")
}

func runCheck(_ *cobra.Command, args []string) error {
	filename := args[0]

	hints, err := semantic.ParseHintsLevel(checkHints)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var program ast.Program
	if err := json.Unmarshal(data, &program); err != nil {
		return fmt.Errorf("failed to decode AST from %s: %w", filename, err)
	}

	if checkVerbose {
		fmt.Fprintf(os.Stderr, "Analyzing %s...\n", filename)
	}

	analyzer := semantic.NewAnalyzer("", filename)
	analyzer.SetHints(hints)
	ok := analyzer.Analyze(&program)

	for _, msg := range analyzer.Reporter().Messages() {
		fmt.Fprintln(os.Stderr, msg)
	}

	if !ok {
		return fmt.Errorf("semantic analysis failed for %s", filename)
	}

	if checkVerbose {
		for _, line := range analyzer.DumpTypes(&program) {
			fmt.Println(line)
		}
		fmt.Fprintf(os.Stderr, "%s: no errors\n", filename)
	} else {
		fmt.Printf("%s: OK\n", filename)
	}
	return nil
}
