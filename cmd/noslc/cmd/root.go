package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/madmann91/nosl/internal/builtins"
	"github.com/madmann91/nosl/internal/check"
	"github.com/madmann91/nosl/internal/diag"
	"github.com/madmann91/nosl/internal/lexer"
	"github.com/madmann91/nosl/internal/parser"
	"github.com/madmann91/nosl/internal/typesys"
	"github.com/madmann91/nosl/pkg/printer"
)

// Version information, set by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagNoColor       bool
	flagWarnsAsErrors bool
	flagNoBuiltins    bool
	flagPrintAST      bool
	flagMaxErrors     int
	flagMaxWarns      int
	flagIncludeDirs   []string
	flagCachePath     string
)

var rootCmd = &cobra.Command{
	Use:   "noslc [flags] <file>...",
	Short: "Type-check nosl shader source files",
	Long: `noslc lexes, parses, and type-checks nosl shading-language source
files, reporting diagnostics with caret-pointer source excerpts.

It implements the front end only: lexer, parser, type checker, and a
pretty-printer used both to render diagnostics and, with --print-ast, to
reprint the checked program tree.`,
	Version:      Version,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runCheck,
}

// Execute runs the root command, loading a .env file (if present) and
// applying its NOSLC_NO_COLOR override before cobra parses argv.
func Execute() error {
	_ = godotenv.Load()
	if v, ok := os.LookupEnv("NOSLC_NO_COLOR"); ok {
		flagNoColor = v != "" && v != "0"
	}
	return rootCmd.Execute()
}

func init() {
	noColorDefault := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	if v, ok := os.LookupEnv("NOSLC_NO_COLOR"); ok {
		noColorDefault = v != "" && v != "0"
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&flagNoColor, "no-color", noColorDefault, "disable ANSI colors in diagnostics")
	flags.BoolVar(&flagWarnsAsErrors, "warns-as-errors", false, "treat warnings as errors")
	flags.BoolVar(&flagNoBuiltins, "no-builtins", false, "do not register built-in constructors and operators")
	flags.BoolVar(&flagPrintAST, "print-ast", false, "print the checked program tree instead of only diagnostics")
	flags.IntVar(&flagMaxErrors, "max-errors", 20, "stop reporting errors after this many (clamped to at least 2)")
	flags.IntVar(&flagMaxWarns, "max-warns", 0, "stop reporting warnings after this many (0 means unlimited)")
	flags.StringArrayVarP(&flagIncludeDirs, "include-dir", "I", nil, "glob of additional source files to prepend before checking")
	flags.StringVar(&flagCachePath, "cache", "", "path to an optional compiled-unit cache (sqlite)")

	rootCmd.AddCommand(cacheStatsCmd, lexCmd, parseCmd, versionCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	var cache *CacheStore
	if flagCachePath != "" {
		c, err := OpenCache(flagCachePath)
		if err != nil {
			return err
		}
		cache = c
	}

	hadError := false
	for _, path := range args {
		if err := checkFile(path, cache); err != nil {
			fmt.Fprintf(os.Stderr, "noslc: %s: %v\n", path, err)
			hadError = true
			continue
		}
	}
	if hadError {
		return fmt.Errorf("one or more files failed to check")
	}
	return nil
}

func checkFile(path string, cache *CacheStore) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source, err := prependIncludes(string(raw), flagIncludeDirs)
	if err != nil {
		return err
	}

	sink := diag.NewDefault(path, source, flagNoColor, flagWarnsAsErrors, diag.Limits{
		MaxErrors: flagMaxErrors,
		MaxWarns:  flagMaxWarns,
	})

	lex := lexer.New(path, source)
	prog := parser.New(lex, sink).Parse()
	for _, e := range lex.Errors() {
		sink.Error(e.Range.Begin, "%s", e.Message)
	}

	table := typesys.NewTable()
	var reg *builtins.Registry
	if flagNoBuiltins {
		reg = &builtins.Registry{}
	} else {
		reg = builtins.New(table)
	}
	check.New(table, reg, sink).Check(prog)

	printer.RenderSink(os.Stdout, sink)

	if flagPrintAST {
		p := printer.New(printer.NewStyle(!flagNoColor))
		fmt.Fprintln(os.Stdout, p.Print(prog))
	}

	if cache != nil {
		summary := printer.New(printer.NewStyle(false)).Print(prog)
		if err := cache.Record(path, Hash(source), summary); err != nil {
			return fmt.Errorf("cache record: %w", err)
		}
	}

	if sink.ErrorCount() > 0 {
		return fmt.Errorf("%d error(s)", sink.ErrorCount())
	}
	return nil
}
