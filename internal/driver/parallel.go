package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"svgtok/internal/diag"
	"svgtok/internal/source"
	"svgtok/internal/token"
)

// TokenizeDirResult is the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error
}

// DirOptions configures TokenizeDir.
type DirOptions struct {
	MaxDiagnostics int
	// Jobs caps the number of worker goroutines; 0 means GOMAXPROCS.
	Jobs int
	// Events receives per-file progress updates and is closed when the
	// run finishes. May be nil.
	Events chan<- Event
}

// ListSVGFiles returns the sorted list of *.svg files under dir.
func ListSVGFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(path), ".svg") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every *.svg file under dir in parallel.
// Results come back in the sorted file order. A file that fails to
// load gets an IOLoadFileError diagnostic instead of aborting the run.
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []TokenizeDirResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}

	files, err := ListSVGFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// The FileSet is not safe for concurrent mutation, so all loading
	// happens up front.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			// Placeholder so the load diagnostic has a valid file.
			fileIDs[path] = fileSet.AddVirtual(path, nil)
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Indices are unique per goroutine, no mutex needed.
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(opts.Events, Event{Path: path, Status: StatusTokenizing})

			bag := diag.NewBag(opts.MaxDiagnostics)

			fileID := fileIDs[path]
			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{File: fileID},
				})
				results[i] = TokenizeDirResult{Path: path, FileID: fileID, Bag: bag, Err: loadErr}
				emit(opts.Events, Event{Path: path, Status: StatusError})
				return nil
			}

			tokens, scanErr := drainFile(fileSet.Get(fileID), bag)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
				Err:    scanErr,
			}

			status := StatusDone
			if scanErr != nil || bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Events, Event{Path: path, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
