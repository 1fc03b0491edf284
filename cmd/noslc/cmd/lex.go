package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/token"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the token stream for a source file",
	Long: `Tokenize a nosl source file and print every token, one per line.

This exists for debugging the lexer itself, independent of the parser
and type checker.`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func runLex(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	lex := lexer.New(args[0], string(raw))
	for {
		t := lex.Next()
		if t.Type == token.NEWLINE {
			continue
		}
		fmt.Printf("%-12s %-20q @%s\n", t.Type, t.Literal, t.Pos())
		if t.Type == token.EOF {
			break
		}
	}
	for _, e := range lex.Errors() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", e.Range.Begin, e.Message)
	}
	return nil
}
