package compiler

import (
	"strings"
	"testing"
)

func TestLexerErrorMessage(t *testing.T) {
	err := &LexerError{Kind: UnterminatedStringLit, Context: `"never closed`, Line: 3}
	msg := err.Error()
	if !strings.HasPrefix(msg, "Lexer error:") {
		t.Errorf("Error() = %q, want prefix %q", msg, "Lexer error:")
	}
	if !strings.Contains(msg, "line 3") {
		t.Errorf("Error() = %q, want it to mention the line", msg)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Kind: ExpectedIdentifier, Offending: Token{Kind: SEMICOLON, Lexeme: ";", Line: 5}}
	msg := err.Error()
	if !strings.HasPrefix(msg, "Parse error:") {
		t.Errorf("Error() = %q, want prefix %q", msg, "Parse error:")
	}
	if !strings.Contains(msg, "line 5") {
		t.Errorf("Error() = %q, want it to mention the line", msg)
	}
}

func TestScopeErrorMessage(t *testing.T) {
	err := &ScopeError{Kind: UndeclaredVariableAccessed, Symbol: "foo"}
	msg := err.Error()
	if !strings.HasPrefix(msg, "Scope Error:") {
		t.Errorf("Error() = %q, want prefix %q", msg, "Scope Error:")
	}
	if !strings.Contains(msg, "foo") {
		t.Errorf("Error() = %q, want it to name the symbol", msg)
	}
}

func TestTypeCheckErrorMessage(t *testing.T) {
	err := &TypeCheckError{Kind: FnCallParamCount, Detail: "function \"f\" expects 1 parameters but got 2"}
	msg := err.Error()
	if !strings.HasPrefix(msg, "Type Check Error:") {
		t.Errorf("Error() = %q, want prefix %q", msg, "Type Check Error:")
	}
	if !strings.Contains(msg, "function call parameter count mismatch") {
		t.Errorf("Error() = %q, want it to include the kind label", msg)
	}
}

func TestTypeCheckErrorMessageWithoutDetail(t *testing.T) {
	err := &TypeCheckError{Kind: EmptyExpression}
	msg := err.Error()
	want := "Type Check Error: empty expression"
	if msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}
