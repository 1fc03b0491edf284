package check

import (
	"strings"

	"github.com/madmann91/nosl/internal/ast"
	"github.com/madmann91/nosl/internal/env"
	"github.com/madmann91/nosl/internal/typesys"
)

// checkTopLevelDecl implements check.c's check_top_level_decl.
func (c *Checker) checkTopLevelDecl(d ast.Decl) {
	switch n := d.(type) {
	case *ast.StructDecl:
		c.checkStructDecl(n)
	case *ast.ShaderDecl:
		c.checkShaderDecl(n)
	case *ast.FunctionDecl:
		c.checkFunctionDecl(n)
	case *ast.VarGroupDecl:
		c.checkVarGroupDecl(n, true)
	case *ast.ErrorNode:
		// Already diagnosed at parse time.
	}
}

// checkVarGroupDecl implements check_var_decl.
func (c *Checker) checkVarGroupDecl(g *ast.VarGroupDecl, isGlobal bool) {
	if isGlobal && !g.IsBuiltin() {
		c.sink.Error(g.Pos(), "only built-in variables can be global")
	}

	typ := c.checkTypeExpr(g.Type, false)
	if typ.IsVoid() {
		c.reportInvalidTypeMsg(g.Pos(), typ, "variable")
	}
	for _, v := range g.Vars {
		c.checkVar(v, g.Type, typ, isGlobal)
	}
}

// checkVar implements check_var. groupType/typ are the already-checked
// shared type of the enclosing group; v.Type is re-checked only when the
// parser gave this particular variable its own node — a per-variable
// array dimension (`int a, b[4];`) — to avoid re-reporting diagnostics
// against the shared type once per sibling.
func (c *Checker) checkVar(v *ast.VarDecl, groupType ast.TypeExpr, typ *typesys.Type, isGlobal bool) {
	c.insertSymbol(v.Name, v, false)
	if v.Type != nil && v.Type != groupType {
		typ = c.checkTypeExpr(v.Type, false)
	}
	if v.Init != nil {
		if isGlobal {
			c.sink.Error(v.Init.Pos(), "built-in global variables cannot be initialized")
		}
		c.checkExpr(&v.Init, typ)
	}
	v.Resolved = typ
}

// checkStructDecl implements check_struct_decl.
func (c *Checker) checkStructDecl(s *ast.StructDecl) {
	const operatorPrefix = "__operator__"
	if strings.HasPrefix(s.Name, operatorPrefix) {
		c.sink.Error(s.Pos(), "structure name %q is not allowed", s.Name)
		c.sink.Note(s.Pos(), "names beginning with '__operator__' are reserved for functions")
		return
	}

	c.insertSymbol(s.Name, s, false)
	c.env.Push(env.KindBlock, s)

	st := c.table.CreateStruct(len(s.Fields))
	st.Struct.Name = s.Name
	for i, field := range s.Fields {
		fieldType := c.checkTypeExpr(field.Type, false)
		c.checkVar(field, field.Type, fieldType, false)
		st.Struct.Fields[i] = typesys.Field{Name: field.Name, Type: field.Resolved}
	}
	c.table.FinalizeStruct(st)

	c.env.Pop()
	s.Resolved = st
}

// checkParams implements check_params/check_param.
func (c *Checker) checkParams(params []*ast.Param) {
	for _, p := range params {
		typ := c.checkTypeExpr(p.Type, true)
		if typ.IsVoid() {
			c.reportInvalidTypeMsg(p.Pos(), typ, "parameter")
		}
		p.Resolved = typ
		if p.Name != "" {
			c.insertSymbol(p.Name, p, false)
		}
	}
}

func (c *Checker) funcParamsOf(params []*ast.Param) []typesys.Param {
	out := make([]typesys.Param, len(params))
	for i, p := range params {
		out[i] = typesys.Param{Type: p.Resolved, IsOutput: p.IsOutput}
	}
	return out
}

// findConflictingOverload implements find_conflicting_overload: an
// identically-typed function already bound under the same name.
func (c *Checker) findConflictingOverload(name string, typ *typesys.Type) ast.Decl {
	for _, sym := range c.env.FindAll(name) {
		if ft, ok := funcTypeOf(sym); ok && ft == typ {
			return sym
		}
	}
	return nil
}

// insertFuncOrShaderSymbol implements insert_func_or_shader_symbol.
func (c *Checker) insertFuncOrShaderSymbol(decl ast.Decl, name string, typ *typesys.Type, isShader bool) {
	var conflict ast.Decl
	if isShader {
		if prev, ok := c.env.FindOne(name); ok {
			conflict = prev
		}
	} else {
		conflict = c.findConflictingOverload(name, typ)
	}
	if conflict != nil {
		kind := "function"
		if isShader {
			kind = "shader"
		}
		c.sink.Error(decl.Pos(), "redefinition for %s %q with type %q", kind, name, typ)
		c.notePreviousLocation(conflict)
		return
	}
	c.insertSymbol(name, decl, true)
}

// checkFunctionDecl implements check_shader_or_func_decl for the
// AST_FUNC_DECL case.
func (c *Checker) checkFunctionDecl(f *ast.FunctionDecl) {
	c.env.Push(env.KindFuncOrShader, f)

	c.checkParams(f.Params)
	retType := c.checkTypeExpr(f.RetType, false)

	isConstructor := f.IsConstructorAttr()
	if isConstructor && (retType.Tag != typesys.Prim || retType.Prim == typesys.Void) {
		c.sink.Error(f.Pos(), "constructors must return a constructible primitive type")
	}

	funcType := c.table.GetFunc(retType, c.funcParamsOf(f.Params), f.HasEllipsis)
	f.Resolved = funcType

	isBuiltin := f.IsBuiltin()
	if f.HasEllipsis && !isBuiltin {
		c.sink.Error(f.Pos(), "'...' is only allowed on built-in functions")
	}
	if f.Body != nil {
		if isBuiltin {
			c.sink.Error(f.Pos(), "built-in function cannot have a body")
		}
		c.checkBlockWithoutScope(f.Body)
	} else if !isBuiltin {
		c.sink.Error(f.Pos(), "missing function body")
	}

	c.env.Pop()

	if !isConstructor {
		c.insertFuncOrShaderSymbol(f, f.Name, funcType, false)
	}
}

// checkShaderDecl implements check_shader_or_func_decl for the
// AST_SHADER_DECL case.
func (c *Checker) checkShaderDecl(s *ast.ShaderDecl) {
	c.env.Push(env.KindFuncOrShader, s)

	for _, p := range s.Params {
		if p.Default == nil {
			c.sink.Error(p.Pos(), "shader parameter %q requires a default value", p.Name)
		}
	}
	c.checkParams(s.Params)
	for _, p := range s.Params {
		if p.Default != nil && p.Resolved != nil {
			c.checkExpr(&p.Default, p.Resolved)
		}
		for _, m := range p.Meta {
			c.checkMetadatum(m)
		}
	}

	retType := c.table.GetShader(s.Kind)
	s.Resolved = c.table.GetFunc(retType, c.funcParamsOf(s.Params), false)

	for _, m := range s.Meta {
		c.checkMetadatum(m)
	}

	if s.Body != nil {
		c.checkBlockWithoutScope(s.Body)
	}

	c.env.Pop()
	c.insertFuncOrShaderSymbol(s, s.Name, s.Resolved, true)
}

func (c *Checker) checkMetadatum(m *ast.Metadatum) {
	typ := c.checkTypeExpr(m.Type, false)
	c.checkExpr(&m.Value, typ)
}
