// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scarab/internal/parser"
	"scarab/internal/runner"
)

var (
	traceRule string
	noColor   bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "scarab [dir ...]",
		Short: "Check that Scala sources are syntactically well formed",
		Long: `scarab walks the given directories (the current directory by default),
parses every .scala file it finds and prints one verdict line per file:

  [<bytes>] <path>  <ok|failed|skip>

Files starting with a shebang, files relying on unicode-escape expansion
and files under a "failing" path segment are skipped. A path segment
named "neg" inverts the expected outcome. The exit code is zero only
when every non-skipped file passes.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&traceRule, "trace", "", "count invocations of the named grammar rule, e.g. Type")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	r := &runner.Runner{Out: os.Stdout}
	if traceRule != "" {
		r.Tracer = parser.NewTracer(traceRule)
	}

	ok, err := r.Run(roots)
	if r.Tracer != nil {
		r.Tracer.Report(os.Stderr)
	}
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("some files failed to parse")
	}
	return nil
}
