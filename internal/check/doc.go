// Package check implements the nosl type checker: a single preorder walk
// over an internal/ast.Program that threads an expected type downward so
// that coercion decisions are local, resolves overloaded calls and
// operators against internal/builtins and the identifier environment in
// internal/env, and rewrites the tree in place — inserting internal/ast
// CastExpr nodes wherever an implicit coercion is chosen.
//
// Every diagnostic is reported through a diag.Sink; a node that fails to
// check has its type set to the table's singleton error type, and no
// further diagnostic is emitted for an expression once any of its
// operands already carries that type, matching the "errors don't cascade"
// contract of the node it is grounded on (original_source/src/check.c).
package check
