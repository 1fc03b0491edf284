// Package parser turns a nosl token stream into a program tree.
//
// It is a Pratt parser over internal/lexer and internal/token, producing
// internal/ast nodes. Precedence is handled by a single binding-power
// table (parser.go); expressions.go implements the prefix/infix/postfix
// parsing loop, including the cast-vs-parenthesised-expression
// disambiguation called for by the grammar; declarations.go and
// statements.go cover the declaration and statement grammars.
//
// Every failure is reported through a diag.Sink and produces an
// ast.ErrorNode at the point of failure; the parser always consumes at
// least one token before resuming, so it is guaranteed to terminate.
package parser
