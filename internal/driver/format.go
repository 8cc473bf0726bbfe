package driver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"wbprotofmt/internal/diag"
	"wbprotofmt/internal/format"
	"wbprotofmt/internal/jsfmt"
	"wbprotofmt/internal/parser"
	"wbprotofmt/internal/pipeline"
	"wbprotofmt/internal/source"
	"wbprotofmt/internal/trace"
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	// Write rewrites changed files in place. Without Write (and
	// without Check) formatted output is returned in the results.
	Write bool
	// Check reports whether files would change without touching them.
	Check bool
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Jobs limits parallel file workers; zero means GOMAXPROCS.
	Jobs int
	// JSFormatter is the external code formatter command line. Empty
	// selects the default. It is also part of the cache fingerprint.
	JSFormatter string
	// Format are the layout engine options. A nil CodeFilter is
	// replaced with a subprocess filter built from JSFormatter.
	Format format.Options
	// Cache is the on-disk format cache. Nil disables caching.
	Cache *FormatCache
	// Progress receives per-file stage events. May be nil.
	Progress pipeline.ProgressSink
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	FileID    source.FileID
	Formatted []byte
	Changed   bool
	Cached    bool
	Bag       *diag.Bag
	Err       error
}

func (o FormatOptions) withDefaults() FormatOptions {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 256
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Format.CodeFilter == nil {
		o.Format.CodeFilter = jsfmt.New(o.JSFormatter)
	}
	return o
}

// FormatPaths formats the given files and directories (directories
// are walked recursively for *.proto files). Results come back in
// discovery order, one per file; per-file failures land in the
// result, not in the returned error.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	opts = opts.withDefaults()
	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, errors.New("format: no source files found")
	}

	fileSet := source.NewFileSet()
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

	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = FormatResult{Path: path, Bag: bag, Err: loadErr}
				emit(opts.Progress, path, pipeline.StageRead, pipeline.StatusError, loadErr, 0)
				return nil
			}
			results[i] = formatOne(gctx, fileSet, fileIDs[path], path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// FormatStdin formats a single document read from r and writes the
// result to w. The cache is bypassed.
func FormatStdin(ctx context.Context, r io.Reader, w io.Writer, opts FormatOptions) error {
	opts = opts.withDefaults()
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	fileSet := source.NewFileSet()
	id, err := fileSet.AddVirtual("<stdin>", raw)
	if err != nil {
		return err
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	tree := parser.ParseFile(fileSet.Get(id), parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	formatted, err := format.Format(ctx, tree, opts.Format)
	if err != nil {
		return err
	}
	_, err = w.Write(formatted)
	return err
}

func formatOne(ctx context.Context, fileSet *source.FileSet, id source.FileID, path string, opts FormatOptions) FormatResult {
	started := time.Now()
	file := fileSet.Get(id)
	result := FormatResult{Path: path, FileID: id, Bag: diag.NewBag(opts.MaxDiagnostics)}

	fileSpan := trace.SpanFromContext(ctx).Child(trace.ScopeFile, "file:"+path)
	defer fileSpan.End()

	if cached, ok := opts.Cache.Lookup(file, opts.cacheFingerprint()); ok {
		result.Formatted = cached
		result.Cached = true
		result.Changed = !bytes.Equal(file.Content, cached)
		fileSpan.Point("cache-hit", "")
		emit(opts.Progress, path, pipeline.StageFormat, pipeline.StatusCached, nil, time.Since(started))
		return finishResult(result, file, opts, fileSpan)
	}

	parseSpan := fileSpan.Child(trace.ScopeStage, "parse")
	emit(opts.Progress, path, pipeline.StageParse, pipeline.StatusWorking, nil, 0)
	tree := parser.ParseFile(file, parser.Options{
		Reporter: diag.BagReporter{Bag: result.Bag},
	})
	emit(opts.Progress, path, pipeline.StageParse, pipeline.StatusDone, nil, time.Since(started))
	parseSpan.End()

	formatStarted := time.Now()
	formatSpan := fileSpan.Child(trace.ScopeStage, "format")
	emit(opts.Progress, path, pipeline.StageFormat, pipeline.StatusWorking, nil, 0)
	formatted, err := format.Format(ctx, tree, opts.Format)
	formatSpan.End()
	if err != nil {
		result.Err = err
		var fe *format.Error
		if errors.As(err, &fe) {
			result.Bag.Add(diag.NewError(fe.Code, fe.Span, fe.Msg))
		}
		emit(opts.Progress, path, pipeline.StageFormat, pipeline.StatusError, err, time.Since(formatStarted))
		return result
	}
	result.Formatted = formatted
	result.Changed = !bytes.Equal(file.Content, formatted)
	opts.Cache.Store(file, opts.cacheFingerprint(), formatted)
	emit(opts.Progress, path, pipeline.StageFormat, pipeline.StatusDone, nil, time.Since(formatStarted))
	return finishResult(result, file, opts, fileSpan)
}

// finishResult applies the write-back policy to a formatted result.
func finishResult(result FormatResult, file *source.File, opts FormatOptions, fileSpan *trace.Span) FormatResult {
	if opts.Check || !opts.Write || !result.Changed {
		return result
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(result.Path); err == nil {
		mode = info.Mode()
	}
	started := time.Now()
	writeSpan := fileSpan.Child(trace.ScopeStage, "write")
	defer writeSpan.End()
	emit(opts.Progress, result.Path, pipeline.StageWrite, pipeline.StatusWorking, nil, 0)
	if err := os.WriteFile(result.Path, result.Formatted, mode.Perm()); err != nil {
		result.Err = err
		emit(opts.Progress, result.Path, pipeline.StageWrite, pipeline.StatusError, err, time.Since(started))
		return result
	}
	emit(opts.Progress, result.Path, pipeline.StageWrite, pipeline.StatusDone, nil, time.Since(started))
	return result
}

func (o FormatOptions) cacheFingerprint() string {
	return fingerprint(o.Format.IndentWidth, o.JSFormatter)
}

func emit(sink pipeline.ProgressSink, file string, stage pipeline.Stage, status pipeline.Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(pipeline.Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}

// CollectSourceFiles expands files and directories into a sorted,
// de-duplicated list of *.proto files.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if !d.IsDir() && filepath.Ext(path) == ".proto" {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}
		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}
