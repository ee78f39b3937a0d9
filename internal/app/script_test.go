package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/quill/internal/engine/document"
)

func newTestEngine() (*ScriptEngine, *document.Document) {
	doc := document.New()
	return NewScriptEngine(doc, 5*time.Second, NullLogger), doc
}

func TestScriptAppendUndo(t *testing.T) {
	engine, doc := newTestEngine()

	err := engine.RunString(`
doc.append("Привет")
doc.append(", мир!")
doc.undo()
`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if doc.Text() != "Привет" {
		t.Errorf("expected 'Привет', got %q", doc.Text())
	}
}

func TestScriptFullAPI(t *testing.T) {
	engine, doc := newTestEngine()

	err := engine.RunString(`
doc.append("Hello World")
doc.insert(5, ",")
doc.delete(5, 6)
doc.replace(6, 11, "Go")
if doc.text() ~= "Hello Go" then
  error("unexpected text: " .. doc.text())
end
if doc.len() ~= 8 then
  error("unexpected len")
end
if doc.history_len() ~= 4 then
  error("unexpected history length: " .. doc.history_len())
end
`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if doc.Text() != "Hello Go" {
		t.Errorf("expected 'Hello Go', got %q", doc.Text())
	}
}

func TestScriptUndoReturnsBool(t *testing.T) {
	engine, _ := newTestEngine()

	err := engine.RunString(`
if doc.undo() then
  error("undo on empty history should be false")
end
doc.append("x")
if not doc.undo() then
  error("undo after edit should be true")
end
`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
}

func TestScriptInvalidOffsetRaises(t *testing.T) {
	engine, doc := newTestEngine()

	err := engine.RunString(`doc.insert(99, "x")`)
	if err == nil {
		t.Fatal("expected error for invalid offset")
	}
	if !strings.Contains(err.Error(), "offset out of range") {
		t.Errorf("expected offset error, got %v", err)
	}

	if doc.Text() != "" || doc.HistoryLen() != 0 {
		t.Error("failed insert should leave document unchanged")
	}
}

func TestScriptSandbox(t *testing.T) {
	engine, _ := newTestEngine()

	// io and os are not opened; indexing them must fail.
	err := engine.RunString(`io.write("breakout")`)
	if err == nil {
		t.Error("io library should not be available to scripts")
	}

	err = engine.RunString(`os.execute("true")`)
	if err == nil {
		t.Error("os library should not be available to scripts")
	}
}

func TestScriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.lua")
	script := `doc.append("from file")`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	engine, doc := newTestEngine()
	if err := engine.Run(path); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if doc.Text() != "from file" {
		t.Errorf("expected 'from file', got %q", doc.Text())
	}
}

func TestScriptMissingFile(t *testing.T) {
	engine, _ := newTestEngine()

	if err := engine.Run(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("expected error for missing script file")
	}
}

func TestRunScriptMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edits.lua")
	script := `
doc.append("scripted")
doc.append(" edit")
doc.undo()
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	application, out := newTestApp(t, Options{ScriptPath: path})

	if err := application.Run(); err != nil {
		t.Fatalf("script mode failed: %v", err)
	}

	if !strings.Contains(out.String(), "scripted") {
		t.Errorf("script mode should print final text, got %q", out.String())
	}
	if application.Document().Text() != "scripted" {
		t.Errorf("expected 'scripted', got %q", application.Document().Text())
	}
}
