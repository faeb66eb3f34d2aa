package compiler

// Result bundles every artifact produced by a successful compile, so a
// caller (the CLI harness, or a test) can inspect any stage's output
// without re-running the pipeline.
type Result struct {
	Tokens       []Token
	AST          *Program
	Instructions []IRInstruction
}

// Compile runs the full pipeline: Lex -> ParseProgram -> ScopeAnalyzer.Analyze
// -> TypeChecker.Check -> IRGenerator.Generate. It stops and returns the
// first phase's error; each phase's error already names which phase failed.
func Compile(src string) (*Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	prog, err := ParseProgram(tokens)
	if err != nil {
		return nil, err
	}

	if err := NewScopeAnalyzer().Analyze(prog); err != nil {
		return nil, err
	}

	if err := NewTypeChecker().Check(prog); err != nil {
		return nil, err
	}

	gen := NewIRGenerator()
	gen.Generate(prog)

	return &Result{Tokens: tokens, AST: prog, Instructions: gen.Instructions()}, nil
}
