// Package ast defines the program-tree node types produced by the parser
// and consumed by the type checker.
//
// Every node implements Node. Nodes split further into Expr (nodes that
// produce a value) and Stmt (nodes that perform an action). Declarations
// implement both Node and Decl, since a top-level declaration can appear
// either as a list element (program scope) or, for variables, nested
// inside a statement.
//
// Node categories, matching the grouping of the original grammar:
//   - Types: PrimitiveType, ShaderKindType, NamedType, UnsizedArrayType
//   - Literals: BoolLiteral, IntLiteral, FloatLiteral, StringLiteral
//   - Declarations: ShaderDecl, FunctionDecl, StructDecl, VarGroupDecl,
//     VarDecl, Param, Metadatum
//   - Expressions: Ident, BinaryExpr, UnaryExpr, CallExpr, ConstructExpr,
//     ParenExpr, CompoundExpr, BraceInit, TernaryExpr, IndexExpr, ProjExpr,
//     CastExpr
//   - Statements: BlockStmt, WhileStmt, ForStmt, DoWhileStmt, IfStmt,
//     BreakStmt, ContinueStmt, ReturnStmt, EmptyStmt
//   - Sentinel: ErrorNode
package ast
