package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"wbprotofmt/internal/cst"
	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/parser"
	"wbprotofmt/internal/source"
)

// ParseResult holds the syntax tree of one file.
type ParseResult struct {
	Path   string
	FileID source.FileID
	Tree   *cst.Tree
	Bag    *diag.Bag
}

// ParsePaths parses all *.proto files under the given paths in
// parallel.
func ParsePaths(ctx context.Context, paths []string, maxDiagnostics, jobs int) (*source.FileSet, []ParseResult, error) {
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

	results := make([]ParseResult, len(files))
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
				results[i] = ParseResult{Path: path, Bag: bag}
				return nil
			}
			id := fileIDs[path]
			tree := parser.ParseFile(fileSet.Get(id), parser.Options{
				Reporter: diag.BagReporter{Bag: bag},
			})
			results[i] = ParseResult{Path: path, FileID: id, Tree: tree, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
