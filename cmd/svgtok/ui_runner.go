package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"svgtok/internal/driver"
	"svgtok/internal/source"
	"svgtok/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runTokenizeDirWithUI runs TokenizeDir in the background and renders
// its event stream as a progress view.
func runTokenizeDirWithUI(ctx context.Context, dir string, opts driver.DirOptions) (*source.FileSet, []driver.TokenizeDirResult, error) {
	files, err := driver.ListSVGFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		fileSet, results, err := driver.TokenizeDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{fileSet: fileSet, results: results, err: err}
	}()

	model := ui.NewProgressModel("tokenizing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
