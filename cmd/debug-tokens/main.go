package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mvp-joe/cortex-hover/internal/languages"
)

// debug-tokens prints the token listing and declarations of a source file.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <file>", os.Args[0])
	}
	path := os.Args[1]

	lang, ok := languages.ForPath(path)
	if !ok {
		log.Fatalf("unsupported file: %s", path)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	doc, err := lang.Parser().Parse(context.Background(), path, source)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== TOKENS (%s) ===\n", lang.Name)
	for i, tok := range doc.Tokens {
		marker := " "
		if tok.Hidden {
			marker = "h"
		}
		fmt.Printf("%5d %s %4d:%-3d %-24s %s\n", i, marker, tok.Line, tok.Column, tok.Rule, strconv.Quote(tok.Text))
	}

	fmt.Println("\n=== DECLARATIONS ===")
	for _, decl := range doc.Declarations {
		fmt.Printf("  %s %q at lines %d-%d\n", decl.Kind, decl.Name, decl.StartLine, decl.EndLine)
		for _, tok := range decl.Leaves() {
			fmt.Printf("      %s %s\n", tok.Rule, strconv.Quote(tok.Text))
		}
	}
}
