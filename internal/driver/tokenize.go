// Package driver wires the tokenizer family to the filesystem: it
// loads documents, runs the structural tokenizer over them, and
// collects tokens and diagnostics for the CLI layer.
package driver

import (
	"svgtok/internal/diag"
	"svgtok/internal/source"
	"svgtok/internal/token"
	"svgtok/internal/xmltok"
)

// TokenizeResult is everything produced for one document.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err is the structural hard error that stopped the tokenizer,
	// if any. Tokens collected before it are kept.
	Err error
}

// Tokenize loads one file and drains the structural tokenizer.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	tokens, scanErr := drainFile(file, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     scanErr,
	}, nil
}

// TokenizeVirtual runs the structural tokenizer over in-memory content
// (stdin, attribute fragments, tests).
func TokenizeVirtual(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))

	bag := diag.NewBag(maxDiagnostics)
	tokens, scanErr := drainFile(file, bag)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     scanErr,
	}
}

func drainFile(file *source.File, bag *diag.Bag) ([]token.Token, error) {
	tok := xmltok.New(file, xmltok.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tk, err := tok.Next()
		if err != nil {
			return tokens, err
		}
		if tk.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tk)
	}
}
