package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/parser"
	"github.com/madmann91/nosl/pkg/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and reprint its program tree",
	Long: `Parse a nosl source file without type-checking it, and reprint the
resulting (unchecked) program tree through pkg/printer.

This is useful for inspecting what the parser recovered from malformed
input, since parsing never aborts on a syntax error.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(_ *cobra.Command, args []string) error {
	path := args[0]
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(raw)

	sink := diag.NewDefault(path, source, flagNoColor, false, diag.Limits{MaxErrors: flagMaxErrors})
	lex := lexer.New(path, source)
	prog := parser.New(lex, sink).Parse()
	for _, e := range lex.Errors() {
		sink.Error(e.Range.Begin, "%s", e.Message)
	}

	printer.RenderSink(os.Stdout, sink)
	fmt.Println(printer.New(printer.NewStyle(!flagNoColor)).Print(prog))

	if sink.ErrorCount() > 0 {
		return fmt.Errorf("%d parse error(s)", sink.ErrorCount())
	}
	return nil
}
