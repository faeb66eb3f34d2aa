package compiler

import "fmt"

// TypeChecker walks the AST a second time (after the Scope Analyzer and
// before the IR Generator), computing a type for every expression and enforcing operator/call compatibility and
// return-path validation.
//
// It rebuilds its own ScopeStack rather than reusing the Scope Analyzer's:
// no scope information is carried between passes.
type TypeChecker struct {
	stack               *ScopeStack
	currentFunctionType string
	hasReturnStmt       bool
}

// NewTypeChecker creates a checker with a fresh scope stack.
func NewTypeChecker() *TypeChecker {
	return &TypeChecker{stack: NewScopeStack()}
}

func isNumericType(t string) bool { return t == "int" || t == "float" }
func isBooleanType(t string) bool { return t == "bool" }

func areTypesCompatible(a, b string) bool {
	if a == b {
		return true
	}
	return (a == "int" && b == "float") || (a == "float" && b == "int")
}

func promoteTypes(a, b string) string {
	if a == b {
		return a
	}
	if (a == "int" && b == "float") || (a == "float" && b == "int") {
		return "float"
	}
	return a
}

// Check runs the full pass. It fails fast: the first TypeCheckError or
// ScopeError encountered aborts the pass.
func (c *TypeChecker) Check(prog *Program) error {
	for _, item := range prog.Items {
		fn, ok := item.(*Function)
		if !ok {
			continue
		}
		paramTypes := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			paramTypes[i] = p.Type
		}
		if err := c.stack.AddFunction(fn.Name, fn.RetType, paramTypes); err != nil {
			return err
		}
	}

	for _, item := range prog.Items {
		switch n := item.(type) {
		case *Function:
			if err := c.checkFunction(n); err != nil {
				return err
			}
		default:
			if err := c.checkStmt(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *TypeChecker) checkFunction(fn *Function) error {
	c.currentFunctionType = fn.RetType
	c.hasReturnStmt = false

	c.stack.EnterScope()
	for _, p := range fn.Params {
		if err := c.stack.AddSymbol(p.Name, p.Type); err != nil {
			c.stack.ExitScope()
			return err
		}
	}
	for _, stmt := range fn.Body.Stmts {
		if err := c.checkStmt(stmt); err != nil {
			c.stack.ExitScope()
			return err
		}
	}
	c.stack.ExitScope()
	c.currentFunctionType = ""

	if fn.RetType != "void" && !c.hasReturnStmt {
		return &TypeCheckError{
			Kind:   ReturnStmtNotFound,
			Detail: fmt.Sprintf("function %q must return a value of type %q", fn.Name, fn.RetType),
		}
	}
	return nil
}

func (c *TypeChecker) checkBlock(blk *Block) error {
	c.stack.EnterScope()
	defer c.stack.ExitScope()
	for _, stmt := range blk.Stmts {
		if err := c.checkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (c *TypeChecker) checkStmt(stmt Stmt) error {
	switch n := stmt.(type) {
	case *VarDecl:
		_, err := c.checkVarDecl(n)
		return err
	case *Return:
		return c.checkReturn(n)
	case *If:
		return c.checkIf(n)
	case *While:
		return c.checkWhile(n)
	case *Block:
		return c.checkBlock(n)
	case *ExprStmt:
		_, err := c.checkExpr(n.Expr)
		return err
	default:
		return nil
	}
}

func (c *TypeChecker) checkVarDecl(decl *VarDecl) (string, error) {
	if decl.Init != nil {
		initType, err := c.checkExpr(decl.Init)
		if err != nil {
			return "", err
		}
		if !areTypesCompatible(decl.TypeName, initType) {
			return "", &TypeCheckError{
				Kind: ErroneousVarDecl,
				Detail: fmt.Sprintf("cannot initialize variable %q of type %q with expression of type %q",
					decl.Name, decl.TypeName, initType),
			}
		}
	}
	if err := c.stack.AddSymbol(decl.Name, decl.TypeName); err != nil {
		return "", err
	}
	return decl.TypeName, nil
}

func (c *TypeChecker) checkReturn(ret *Return) error {
	c.hasReturnStmt = true

	if ret.Expr != nil {
		exprType, err := c.checkExpr(ret.Expr)
		if err != nil {
			return err
		}
		if c.currentFunctionType == "void" {
			return &TypeCheckError{Kind: ErroneousReturnType, Detail: "cannot return a value from a void function"}
		}
		if !areTypesCompatible(c.currentFunctionType, exprType) {
			return &TypeCheckError{
				Kind: ErroneousReturnType,
				Detail: fmt.Sprintf("expected return type %q but got %q",
					c.currentFunctionType, exprType),
			}
		}
		return nil
	}

	if c.currentFunctionType != "void" {
		return &TypeCheckError{
			Kind:   ErroneousReturnType,
			Detail: fmt.Sprintf("function must return a value of type %q", c.currentFunctionType),
		}
	}
	return nil
}

func (c *TypeChecker) checkIf(n *If) error {
	condType, err := c.checkExpr(n.Cond)
	if err != nil {
		return err
	}
	if !isBooleanType(condType) {
		return &TypeCheckError{Kind: NonBooleanCondStmt, Detail: fmt.Sprintf("if condition must be bool, got %q", condType)}
	}
	if err := c.checkBlock(n.Then); err != nil {
		return err
	}
	if n.Else != nil {
		return c.checkBlock(n.Else)
	}
	return nil
}

func (c *TypeChecker) checkWhile(n *While) error {
	condType, err := c.checkExpr(n.Cond)
	if err != nil {
		return err
	}
	if !isBooleanType(condType) {
		return &TypeCheckError{Kind: NonBooleanCondStmt, Detail: fmt.Sprintf("while condition must be bool, got %q", condType)}
	}
	return c.checkBlock(n.Body)
}

func (c *TypeChecker) checkExpr(expr Expr) (string, error) {
	if expr == nil {
		return "", &TypeCheckError{Kind: EmptyExpression}
	}
	switch n := expr.(type) {
	case *BinaryOp:
		return c.checkBinaryOp(n)
	case *UnaryOp:
		return c.checkUnaryOp(n)
	case *Literal:
		return c.checkLiteral(n)
	case *Identifier:
		return c.checkIdentifier(n)
	case *Call:
		return c.checkCall(n)
	case *Assignment:
		return c.checkAssignment(n)
	default:
		return "", &TypeCheckError{Kind: EmptyExpression}
	}
}

func (c *TypeChecker) checkBinaryOp(n *BinaryOp) (string, error) {
	leftType, err := c.checkExpr(n.Left)
	if err != nil {
		return "", err
	}
	rightType, err := c.checkExpr(n.Right)
	if err != nil {
		return "", err
	}

	switch n.Op {
	case "&&", "||":
		if !isBooleanType(leftType) || !isBooleanType(rightType) {
			return "", &TypeCheckError{
				Kind: AttemptedBoolOpOnNonBools,
				Detail: fmt.Sprintf("operator %q requires boolean operands, got %q and %q",
					n.Op, leftType, rightType),
			}
		}
		return "bool", nil

	case "==", "!=", "<", ">", "<=", ">=":
		if !areTypesCompatible(leftType, rightType) {
			return "", &TypeCheckError{
				Kind:   ExpressionTypeMismatch,
				Detail: fmt.Sprintf("cannot compare %q with %q", leftType, rightType),
			}
		}
		return "bool", nil

	case "+", "-", "*", "/":
		if !isNumericType(leftType) || !isNumericType(rightType) {
			return "", &TypeCheckError{
				Kind: AttemptedAddOpOnNonNumeric,
				Detail: fmt.Sprintf("operator %q requires numeric operands, got %q and %q",
					n.Op, leftType, rightType),
			}
		}
		return promoteTypes(leftType, rightType), nil

	default:
		return leftType, nil
	}
}

func (c *TypeChecker) checkUnaryOp(n *UnaryOp) (string, error) {
	operandType, err := c.checkExpr(n.Operand)
	if err != nil {
		return "", err
	}
	if !isNumericType(operandType) {
		return "", &TypeCheckError{
			Kind:   AttemptedAddOpOnNonNumeric,
			Detail: fmt.Sprintf("unary %q requires a numeric operand, got %q", n.Op, operandType),
		}
	}
	return operandType, nil
}

func (c *TypeChecker) checkLiteral(n *Literal) (string, error) {
	switch n.Kind {
	case LitInt:
		return "int", nil
	case LitFloat:
		return "float", nil
	case LitString:
		return "string", nil
	case LitBool:
		return "bool", nil
	default:
		return "", &TypeCheckError{Kind: EmptyExpression}
	}
}

func (c *TypeChecker) checkIdentifier(n *Identifier) (string, error) {
	sym, err := c.stack.RequireSymbol(n.Name)
	if err != nil {
		return "", err
	}
	return sym.Type, nil
}

func (c *TypeChecker) checkCall(n *Call) (string, error) {
	fnSym, err := c.stack.RequireFunction(n.Callee.Name)
	if err != nil {
		return "", err
	}
	if len(n.Args) != len(fnSym.ParamTypes) {
		return "", &TypeCheckError{
			Kind: FnCallParamCount,
			Detail: fmt.Sprintf("function %q expects %d parameters but got %d",
				n.Callee.Name, len(fnSym.ParamTypes), len(n.Args)),
		}
	}
	for i, arg := range n.Args {
		argType, err := c.checkExpr(arg)
		if err != nil {
			return "", err
		}
		expected := fnSym.ParamTypes[i]
		if !areTypesCompatible(expected, argType) {
			return "", &TypeCheckError{
				Kind: FnCallParamType,
				Detail: fmt.Sprintf("parameter %d of function %q expects type %q but got %q",
					i+1, n.Callee.Name, expected, argType),
			}
		}
	}
	return fnSym.Type, nil
}

func (c *TypeChecker) checkAssignment(n *Assignment) (string, error) {
	leftType, err := c.checkIdentifier(n.Left)
	if err != nil {
		return "", err
	}
	rightType, err := c.checkExpr(n.Right)
	if err != nil {
		return "", err
	}

	if n.Op != OpAssign {
		if !isNumericType(leftType) || !isNumericType(rightType) {
			return "", &TypeCheckError{
				Kind:   AttemptedAddOpOnNonNumeric,
				Detail: fmt.Sprintf("compound assignment %q requires numeric operands", n.Op),
			}
		}
		return leftType, nil
	}

	if !areTypesCompatible(leftType, rightType) {
		return "", &TypeCheckError{
			Kind:   ExpressionTypeMismatch,
			Detail: fmt.Sprintf("cannot assign value of type %q to variable of type %q", rightType, leftType),
		}
	}
	return leftType, nil
}
