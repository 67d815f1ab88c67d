package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cmmcheck",
	Short: "Semantic analyzer for C--",
	Long: `cmmcheck runs the C-- front end's semantic analysis core over a
program's AST: name analysis followed by type checking.

It expects the AST as a JSON document (see the internal/ast package's
"kind"-discriminated wire format) rather than source text, since lexing and
parsing are treated as an external collaborator stage that has already run.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
