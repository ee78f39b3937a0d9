package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestApp(t *testing.T, opts Options) (*Application, *bytes.Buffer) {
	t.Helper()

	application, err := New(opts)
	if err != nil {
		t.Fatalf("creating application: %v", err)
	}
	t.Cleanup(application.Shutdown)

	var out bytes.Buffer
	application.SetIO(strings.NewReader(""), &out)
	application.logger = NullLogger
	return application, &out
}

func TestDemoOutput(t *testing.T) {
	application, out := newTestApp(t, Options{})

	if err := application.Run(); err != nil {
		t.Fatalf("demo run failed: %v", err)
	}

	expected := "Привет, мир!\nПривет\nПривет Java!\nПривет\n"
	if out.String() != expected {
		t.Errorf("demo output = %q, want %q", out.String(), expected)
	}
}

func TestUndoNoticeOnEmptyHistory(t *testing.T) {
	application, out := newTestApp(t, Options{})

	application.undo()

	if !strings.Contains(out.String(), "Nothing to undo") {
		t.Errorf("expected empty-history notice, got %q", out.String())
	}
	if application.Document().Text() != "" {
		t.Errorf("no-op undo changed text to %q", application.Document().Text())
	}
}

func TestInteractiveSession(t *testing.T) {
	application, err := New(Options{Interactive: true})
	if err != nil {
		t.Fatalf("creating application: %v", err)
	}
	defer application.Shutdown()
	application.logger = NullLogger

	input := strings.Join([]string{
		"append Hello",
		"append , World",
		"undo",
		"insert 5 !",
		"history",
		"quit",
	}, "\n")

	var out bytes.Buffer
	application.SetIO(strings.NewReader(input), &out)

	if err := application.Run(); err != nil {
		t.Fatalf("interactive run failed: %v", err)
	}

	text := application.Document().Text()
	if text != "Hello!" {
		t.Errorf("expected 'Hello!', got %q", text)
	}
	if !strings.Contains(out.String(), "undoable state(s)") {
		t.Errorf("expected history report in output, got %q", out.String())
	}
}

func TestExecCommandErrors(t *testing.T) {
	application, out := newTestApp(t, Options{})

	tests := []struct {
		line     string
		expected string
	}{
		{"insert", "usage: insert"},
		{"insert x y", "usage: insert"},
		{"delete 1", "usage: delete"},
		{"replace 1 two three", "usage: replace"},
		{"insert 99 text", "error:"},
		{"delete 5 2", "error:"},
		{"frobnicate", "unknown command"},
	}

	for _, tt := range tests {
		out.Reset()
		application.execCommand(tt.line)
		if !strings.Contains(out.String(), tt.expected) {
			t.Errorf("execCommand(%q) output %q, want substring %q", tt.line, out.String(), tt.expected)
		}
	}
}

func TestExecCommandQuit(t *testing.T) {
	application, _ := newTestApp(t, Options{})

	if !application.execCommand("quit") {
		t.Error("quit should end the session")
	}
	if !application.execCommand("exit") {
		t.Error("exit should end the session")
	}
	if application.execCommand("show") {
		t.Error("show should not end the session")
	}
}

func TestExecCommandTextWithSpaces(t *testing.T) {
	application, _ := newTestApp(t, Options{})

	application.execCommand("append one two three")
	if got := application.Document().Text(); got != "one two three" {
		t.Errorf("append should keep spaces, got %q", got)
	}

	application.execCommand("replace 0 3 four five")
	if got := application.Document().Text(); got != "four five two three" {
		t.Errorf("replace should keep spaces, got %q", got)
	}
}

func TestNewAppliesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	content := "[history]\nmax_entries = 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	application, _ := newTestApp(t, Options{ConfigPath: path})

	doc := application.Document()
	doc.Append("a").Append("b").Append("c")

	if doc.HistoryLen() != 1 {
		t.Errorf("config history limit not applied, got %d entries", doc.HistoryLen())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := New(Options{ConfigPath: path}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		args []string
		rest string
	}{
		{"5 hello world", 1, []string{"5"}, "hello world"},
		{"1 2 text here", 2, []string{"1", "2"}, "text here"},
		{"7", 1, []string{"7"}, ""},
		{"", 1, []string{""}, ""},
	}

	for _, tt := range tests {
		args, rest := splitArgs(tt.in, tt.n)
		if len(args) != len(tt.args) {
			t.Errorf("splitArgs(%q, %d) args = %v, want %v", tt.in, tt.n, args, tt.args)
			continue
		}
		for i := range args {
			if args[i] != tt.args[i] {
				t.Errorf("splitArgs(%q, %d) args = %v, want %v", tt.in, tt.n, args, tt.args)
			}
		}
		if rest != tt.rest {
			t.Errorf("splitArgs(%q, %d) rest = %q, want %q", tt.in, tt.n, rest, tt.rest)
		}
	}
}
