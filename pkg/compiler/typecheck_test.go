package compiler

import "testing"

func TestTypeCheckerAccepts(t *testing.T) {
	tests := []string{
		"fn int f() { return 1; }",
		"fn float f() { return 1; }",       // int -> float promotion on return
		"fn int f() { int x = 1; float y = 2.5; return x; }",
		"fn bool f() { return 1 < 2; }",
		"fn bool f() { return true && false; }",
		"fn int f() { return 1 + 2 * 3; }",
		"fn int f() { return 1 + 2.0; }", // mixed numeric promotes
		"fn int f(int a, int b) { return a + b; } fn int g() { return f(1, 2); }",
		"fn int f(float a) { return 1; } fn int g() { return f(1); }", // int arg -> float param ok
		"fn string f() { string s = \"hi\"; return s; }",
		"fn bool f() { string a = \"x\"; string b = \"x\"; return a == b; }",
		"fn int f() { int x = 1; x += 2; return x; }",
		"fn int f() { int x = 1; x++; ++x; return x; }",
		"fn int f() { if (1 < 2) { return 1; } else { return 2; } }",
		"fn int f() { int i = 0; while (i < 10) { i = i + 1; } return i; }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			prog := mustParse(t, src)
			if err := NewScopeAnalyzer().Analyze(prog); err != nil {
				t.Fatalf("Analyze(%q): unexpected error: %v", src, err)
			}
			if err := NewTypeChecker().Check(prog); err != nil {
				t.Errorf("Check(%q): unexpected error: %v", src, err)
			}
		})
	}
}

func TestTypeCheckerRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind TypeCheckErrorKind
	}{
		{"missing return in non-void function", "fn int f() { int x = 1; }", ReturnStmtNotFound},
		{"wrong return type", "fn int f() { return true; }", ErroneousReturnType},
		{"non-bool if condition", "fn int f() { if (1) { return 1; } return 0; }", NonBooleanCondStmt},
		{"non-bool while condition", "fn int f() { while (1) { } return 0; }", NonBooleanCondStmt},
		{"boolean op on non-bools", "fn bool f() { return 1 && 2; }", AttemptedBoolOpOnNonBools},
		{"arithmetic on non-numeric", "fn int f() { string s = \"x\"; return s + s; }", AttemptedAddOpOnNonNumeric},
		{"string does not compare with int", "fn bool f() { string s = \"x\"; return s == 1; }", ExpressionTypeMismatch},
		{"var decl init type mismatch", "fn int f() { bool b = 1; return 0; }", ErroneousVarDecl},
		{"assignment type mismatch", "fn int f() { bool b = true; b = 1; return 0; }", ExpressionTypeMismatch},
		{
			"call arity mismatch",
			"fn int f(int a) { return a; } fn int g() { return f(1, 2); }",
			FnCallParamCount,
		},
		{
			"call param type mismatch",
			"fn int f(int a) { return a; } fn int g() { return f(true); }",
			FnCallParamType,
		},
		{"bare return as a top-level statement", "fn int f() { return 1; } return;", ErroneousReturnType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := mustParse(t, tt.src)
			if err := NewScopeAnalyzer().Analyze(prog); err != nil {
				t.Fatalf("Analyze(%q): unexpected error: %v", tt.src, err)
			}
			err := NewTypeChecker().Check(prog)
			if err == nil {
				t.Fatalf("Check(%q) expected an error, got none", tt.src)
			}
			tcErr, ok := err.(*TypeCheckError)
			if !ok {
				t.Fatalf("Check(%q) error type = %T, want *TypeCheckError", tt.src, err)
			}
			if tcErr.Kind != tt.kind {
				t.Errorf("Check(%q) kind = %v, want %v", tt.src, tcErr.Kind, tt.kind)
			}
		})
	}
}
