package driver

import (
	"bytes"
	"context"
	"fmt"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/format"
	"wbprotofmt/internal/parser"
	"wbprotofmt/internal/source"
)

// CheckIdempotent formats raw, reparses the output and formats it
// again. It returns the first formatted output, or an error when the
// two passes disagree.
func CheckIdempotent(ctx context.Context, raw []byte, opts format.Options) ([]byte, error) {
	first, err := formatOnce(ctx, "<input>", raw, opts)
	if err != nil {
		return nil, err
	}
	second, err := formatOnce(ctx, "<reformat>", first, opts)
	if err != nil {
		return nil, fmt.Errorf("formatted output does not reparse: %w", err)
	}
	if !bytes.Equal(first, second) {
		return first, fmt.Errorf("formatting is not idempotent: second pass differs")
	}
	return first, nil
}

func formatOnce(ctx context.Context, name string, raw []byte, opts format.Options) ([]byte, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.AddVirtual(name, raw)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(64)
	tree := parser.ParseFile(fileSet.Get(id), parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return format.Format(ctx, tree, opts)
}
