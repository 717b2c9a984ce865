package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"svgtok/internal/diag"
	"svgtok/internal/driver"
	"svgtok/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.svg", `<svg><rect width="5"/></svg>`)

	result, err := driver.Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if result.Err != nil {
		t.Fatalf("unexpected scan error: %v", result.Err)
	}
	if len(result.Tokens) != 6 {
		t.Errorf("got %d tokens, want 6: %+v", len(result.Tokens), result.Tokens)
	}
	if result.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", result.Bag.Items())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := driver.Tokenize(filepath.Join(t.TempDir(), "nope.svg"), 10); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestTokenizeVirtual(t *testing.T) {
	result := driver.TokenizeVirtual("stdin", []byte("<svg/>"), 10)
	if result.Err != nil {
		t.Fatalf("unexpected scan error: %v", result.Err)
	}
	if len(result.Tokens) != 2 {
		t.Errorf("got %d tokens, want 2", len(result.Tokens))
	}
}

func TestTokenizeKeepsTokensBeforeHardError(t *testing.T) {
	result := driver.TokenizeVirtual("stdin", []byte("<svg></svg></svg>"), 10)
	if result.Err == nil {
		t.Fatal("expected a hard error for the extra closing tag")
	}
	// The well-formed prefix is still delivered.
	var starts int
	for _, tk := range result.Tokens {
		if tk.Kind == token.ElementStart {
			starts++
		}
	}
	if starts != 1 {
		t.Errorf("got %d element starts before the error, want 1", starts)
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.svg", "<svg/>")
	writeFile(t, dir, "a.svg", "<svg><g/></svg>")
	writeFile(t, dir, "notes.txt", "not svg")

	events := make(chan driver.Event, 64)
	fs, results, err := driver.TokenizeDir(context.Background(), dir, driver.DirOptions{
		MaxDiagnostics: 10,
		Jobs:           2,
		Events:         events,
	})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs.Len() != 2 {
		t.Errorf("fileset has %d files, want 2", fs.Len())
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Sorted order.
	if filepath.Base(results[0].Path) != "a.svg" || filepath.Base(results[1].Path) != "b.svg" {
		t.Errorf("result order = %s, %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Err != nil || r.Bag.Len() != 0 {
			t.Errorf("%s: err=%v diags=%+v", r.Path, r.Err, r.Bag.Items())
		}
	}

	// The events channel is closed after the run, with one terminal
	// event per file.
	var done int
	for ev := range events {
		if ev.Status == driver.StatusDone {
			done++
		}
	}
	if done != 2 {
		t.Errorf("got %d done events, want 2", done)
	}
}

func TestTokenizeDirLoadFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.svg", "<svg/>")
	// A dangling symlink fails to load without aborting the run.
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "bad.svg")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	_, results, err := driver.TokenizeDir(context.Background(), dir, driver.DirOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	badResult := results[0]
	if badResult.Err == nil {
		t.Fatal("unreadable file should carry a load error")
	}
	if badResult.Bag.Len() != 1 || badResult.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Errorf("diagnostics = %+v, want one IOLoadFileError", badResult.Bag.Items())
	}
}
