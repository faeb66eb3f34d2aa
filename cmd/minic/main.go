package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"minic/pkg/compiler"
)

func main() {
	inPath := flag.String("in", "text.txt", "path to source file to compile")
	printTokens := flag.Bool("tokens", false, "print the lexed token stream")
	printAST := flag.Bool("ast", false, "print the parsed AST")
	printScopes := flag.Bool("scopes", false, "print the global scope's resolved symbols")
	flag.Parse()

	data, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("minic: cannot read %s: %v", *inPath, err)
	}
	src := string(data)

	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *printTokens {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	prog, err := compiler.ParseProgram(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *printAST {
		fmt.Print(compiler.PrintAST(prog))
		fmt.Println()
	}

	analyzer := compiler.NewScopeAnalyzer()
	if err := analyzer.Analyze(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *printScopes {
		fmt.Print(compiler.PrintScopes(analyzer.Stack()))
		fmt.Println()
	}

	if err := compiler.NewTypeChecker().Check(prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	gen := compiler.NewIRGenerator()
	gen.Generate(prog)
	fmt.Print(compiler.PrintTAC(gen.Instructions()))
}
