package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/lexer"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/token"
)

// TokenizeResult holds the token stream of one file.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// TokenizePaths tokenizes all *.proto files under the given paths in
// parallel.
func TokenizePaths(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeResult, error) {
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	results := make([]TokenizeResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(maxDiagnostics)
			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = TokenizeResult{Path: path, Bag: bag}
				return nil
			}
			id := fileIDs[path]
			lx := lexer.New(fileSet.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
			var tokens []token.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF {
					break
				}
			}
			results[i] = TokenizeResult{Path: path, FileID: id, Tokens: tokens, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
