package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is the compiler's record of a declared name: a variable stores
// only its Type; a function stores its return type in Type and its
// positional parameter types in ParamTypes.
type Symbol struct {
	Name       string
	Type       string
	IsFunction bool
	ScopeLevel int
	ParamTypes []string // only meaningful when IsFunction
}

// ScopeNode is one node of the scope tree: a name->Symbol table plus a
// back-reference to its parent. The root (Parent == nil) is the global
// scope, which holds every function symbol.
type ScopeNode struct {
	parent  *ScopeNode
	symbols map[string]*Symbol
	level   int
}

func newScopeNode(parent *ScopeNode) *ScopeNode {
	level := 0
	if parent != nil {
		level = parent.level + 1
	}
	return &ScopeNode{parent: parent, symbols: make(map[string]*Symbol), level: level}
}

// ScopeStack tracks the current position in the scope tree during a single
// walk. It is not shared between passes: each of the Scope Analyzer, Type
// Checker, and IR Generator constructs and owns its own.
type ScopeStack struct {
	global  *ScopeNode
	current *ScopeNode
}

// NewScopeStack creates a stack seeded with an empty global scope.
func NewScopeStack() *ScopeStack {
	g := newScopeNode(nil)
	return &ScopeStack{global: g, current: g}
}

// EnterScope pushes a fresh child scope of the current one.
func (s *ScopeStack) EnterScope() {
	s.current = newScopeNode(s.current)
}

// ExitScope pops back to the parent of the current scope. A no-op at the
// global scope.
func (s *ScopeStack) ExitScope() {
	if s.current.parent != nil {
		s.current = s.current.parent
	}
}

// AddSymbol inserts a variable into the current scope. It returns a
// VariableRedefinition ScopeError if name is already declared in the
// SAME scope; shadowing an outer scope's name is permitted.
func (s *ScopeStack) AddSymbol(name, typ string) error {
	if _, exists := s.current.symbols[name]; exists {
		return &ScopeError{Kind: VariableRedefinition, Symbol: name}
	}
	s.current.symbols[name] = &Symbol{Name: name, Type: typ, ScopeLevel: s.current.level}
	return nil
}

// AddFunction inserts a function prototype into the global scope. It
// returns a FunctionPrototypeRedefinition ScopeError on a duplicate name.
func (s *ScopeStack) AddFunction(name, retType string, paramTypes []string) error {
	if _, exists := s.global.symbols[name]; exists {
		return &ScopeError{Kind: FunctionPrototypeRedefinition, Symbol: name}
	}
	s.global.symbols[name] = &Symbol{
		Name: name, Type: retType, IsFunction: true,
		ScopeLevel: s.global.level, ParamTypes: paramTypes,
	}
	return nil
}

// Lookup searches outward from the current scope for name, skipping any hit
// whose IsFunction disagrees with wantFunction and continuing the search.
func (s *ScopeStack) Lookup(name string, wantFunction bool) (*Symbol, bool) {
	for scope := s.current; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			if sym.IsFunction == wantFunction {
				return sym, true
			}
			continue
		}
	}
	return nil, false
}

// RequireSymbol looks up a non-function symbol, or fails with
// UndeclaredVariableAccessed.
func (s *ScopeStack) RequireSymbol(name string) (*Symbol, error) {
	sym, ok := s.Lookup(name, false)
	if !ok {
		return nil, &ScopeError{Kind: UndeclaredVariableAccessed, Symbol: name}
	}
	return sym, nil
}

// RequireFunction looks up a function symbol, or fails with
// UndefinedFunctionCalled.
func (s *ScopeStack) RequireFunction(name string) (*Symbol, error) {
	sym, ok := s.Lookup(name, true)
	if !ok {
		return nil, &ScopeError{Kind: UndefinedFunctionCalled, Symbol: name}
	}
	return sym, nil
}

// ScopeAnalyzer walks the AST building a tree of lexical scopes, populating
// symbols and resolving every identifier use.
type ScopeAnalyzer struct {
	stack *ScopeStack
}

// NewScopeAnalyzer creates an analyzer with a fresh scope stack.
func NewScopeAnalyzer() *ScopeAnalyzer {
	return &ScopeAnalyzer{stack: NewScopeStack()}
}

// Stack exposes the analyzer's scope stack: its state after a successful
// Analyze call, for a caller that wants to inspect resolved bindings.
func (a *ScopeAnalyzer) Stack() *ScopeStack { return a.stack }

// Analyze runs a two-pass walk: hoist every top-level function into the
// global scope, then recursively walk each function body.
func (a *ScopeAnalyzer) Analyze(prog *Program) error {
	for _, item := range prog.Items {
		fn, ok := item.(*Function)
		if !ok {
			continue
		}
		paramTypes := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = p.Type
		}
		if err := a.stack.AddFunction(fn.Name, fn.RetType, paramTypes); err != nil {
			return err
		}
	}

	for _, item := range prog.Items {
		switch n := item.(type) {
		case *Function:
			if err := a.analyzeFunction(n); err != nil {
				return err
			}
		default:
			if err := a.analyzeStmt(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// analyzeFunction enters one new scope for the parameter list and walks the
// body's statements directly in it — the function body's own Block does not
// open a second scope.
func (a *ScopeAnalyzer) analyzeFunction(fn *Function) error {
	a.stack.EnterScope()
	defer a.stack.ExitScope()

	for _, p := range fn.Params {
		if err := a.stack.AddSymbol(p.Name, p.Type); err != nil {
			return err
		}
	}
	for _, stmt := range fn.Body.Stmts {
		if err := a.analyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// analyzeBlock enters a fresh scope: used for every block EXCEPT a
// function's own body (see analyzeFunction).
func (a *ScopeAnalyzer) analyzeBlock(blk *Block) error {
	a.stack.EnterScope()
	defer a.stack.ExitScope()

	for _, stmt := range blk.Stmts {
		if err := a.analyzeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (a *ScopeAnalyzer) analyzeStmt(stmt Stmt) error {
	switch n := stmt.(type) {
	case *VarDecl:
		return a.analyzeVarDecl(n)
	case *Return:
		if n.Expr != nil {
			return a.analyzeExpr(n.Expr)
		}
		return nil
	case *If:
		if err := a.analyzeExpr(n.Cond); err != nil {
			return err
		}
		if err := a.analyzeBlock(n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return a.analyzeBlock(n.Else)
		}
		return nil
	case *While:
		if err := a.analyzeExpr(n.Cond); err != nil {
			return err
		}
		return a.analyzeBlock(n.Body)
	case *Block:
		return a.analyzeBlock(n)
	case *ExprStmt:
		return a.analyzeExpr(n.Expr)
	default:
		return nil
	}
}

func (a *ScopeAnalyzer) analyzeVarDecl(decl *VarDecl) error {
	if decl.Init != nil {
		if err := a.analyzeExpr(decl.Init); err != nil {
			return err
		}
	}
	return a.stack.AddSymbol(decl.Name, decl.TypeName)
}

func (a *ScopeAnalyzer) analyzeExpr(expr Expr) error {
	switch n := expr.(type) {
	case *BinaryOp:
		if err := a.analyzeExpr(n.Left); err != nil {
			return err
		}
		return a.analyzeExpr(n.Right)
	case *UnaryOp:
		return a.analyzeExpr(n.Operand)
	case *Literal:
		return nil
	case *Identifier:
		_, err := a.stack.RequireSymbol(n.Name)
		return err
	case *Call:
		if _, err := a.stack.RequireFunction(n.Callee.Name); err != nil {
			return err
		}
		for _, arg := range n.Args {
			if err := a.analyzeExpr(arg); err != nil {
				return err
			}
		}
		return nil
	case *Assignment:
		if _, err := a.stack.RequireSymbol(n.Left.Name); err != nil {
			return err
		}
		return a.analyzeExpr(n.Right)
	default:
		return nil
	}
}

// PrintScopes renders the global scope's symbol table: every function
// prototype and every top-level variable resolved by an Analyze pass. Nested
// block scopes are already closed by the time Analyze returns, so this is a
// debug summary of top-level bindings, not the full tree.
func PrintScopes(s *ScopeStack) string {
	names := make([]string, 0, len(s.global.symbols))
	for name := range s.global.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Global scope\n")
	for _, name := range names {
		sym := s.global.symbols[name]
		if sym.IsFunction {
			fmt.Fprintf(&b, "  fn %s(%s) %s\n", sym.Name, strings.Join(sym.ParamTypes, ", "), sym.Type)
			continue
		}
		fmt.Fprintf(&b, "  var %s %s\n", sym.Name, sym.Type)
	}
	return b.String()
}
