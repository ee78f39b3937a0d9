package app

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine/document"
)

// ScriptEngine runs Lua scripts against a document. Scripts see a
// global `doc` table:
//
//	doc.append(text)
//	doc.insert(offset, text)        -- 0-based character offset
//	doc.delete(start, stop)         -- half-open [start, stop)
//	doc.replace(start, stop, text)
//	doc.undo()                      -- returns true if a state was restored
//	doc.text()                      -- current content
//	doc.len()                       -- length in characters
//	doc.history_len()               -- undoable state count
//
// Invalid offsets raise a Lua error, which surfaces as the Run error.
// Scripts execute with a restricted standard library: no io, os,
// debug, or package access.
type ScriptEngine struct {
	doc     *document.Document
	timeout time.Duration
	logger  *Logger
}

// NewScriptEngine creates a script engine bound to the given document.
// A timeout of 0 means no execution time limit.
func NewScriptEngine(doc *document.Document, timeout time.Duration, logger *Logger) *ScriptEngine {
	if logger == nil {
		logger = NullLogger
	}
	return &ScriptEngine{
		doc:     doc,
		timeout: timeout,
		logger:  logger,
	}
}

// Run executes the Lua script at path.
func (e *ScriptEngine) Run(path string) error {
	return e.run(func(L *lua.LState) error {
		return L.DoFile(path)
	})
}

// RunString executes Lua source directly.
func (e *ScriptEngine) RunString(src string) error {
	return e.run(func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// run sets up a fresh sandboxed state, registers the doc API, and
// executes the script.
func (e *ScriptEngine) run(do func(*lua.LState) error) error {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	defer L.Close()

	openSafeLibraries(L)

	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		L.SetContext(ctx)
	}

	e.register(L)

	start := time.Now()
	err := do(L)
	e.logger.Debug("script finished in %v", time.Since(start))
	return err
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// register installs the global doc table.
func (e *ScriptEngine) register(L *lua.LState) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"append":      e.luaAppend,
		"insert":      e.luaInsert,
		"delete":      e.luaDelete,
		"replace":     e.luaReplace,
		"undo":        e.luaUndo,
		"text":        e.luaText,
		"len":         e.luaLen,
		"history_len": e.luaHistoryLen,
	})
	L.SetGlobal("doc", mod)
}

func (e *ScriptEngine) luaAppend(L *lua.LState) int {
	e.doc.Append(L.CheckString(1))
	return 0
}

func (e *ScriptEngine) luaInsert(L *lua.LState) int {
	offset := L.CheckInt(1)
	text := L.CheckString(2)
	if _, err := e.doc.Insert(offset, text); err != nil {
		L.RaiseError("insert: %v", err)
	}
	return 0
}

func (e *ScriptEngine) luaDelete(L *lua.LState) int {
	start := L.CheckInt(1)
	stop := L.CheckInt(2)
	if _, err := e.doc.Delete(start, stop); err != nil {
		L.RaiseError("delete: %v", err)
	}
	return 0
}

func (e *ScriptEngine) luaReplace(L *lua.LState) int {
	start := L.CheckInt(1)
	stop := L.CheckInt(2)
	text := L.CheckString(3)
	if _, err := e.doc.Replace(start, stop, text); err != nil {
		L.RaiseError("replace: %v", err)
	}
	return 0
}

func (e *ScriptEngine) luaUndo(L *lua.LState) int {
	L.Push(lua.LBool(e.doc.Undo()))
	return 1
}

func (e *ScriptEngine) luaText(L *lua.LState) int {
	L.Push(lua.LString(e.doc.Text()))
	return 1
}

func (e *ScriptEngine) luaLen(L *lua.LState) int {
	L.Push(lua.LNumber(e.doc.Len()))
	return 1
}

func (e *ScriptEngine) luaHistoryLen(L *lua.LState) int {
	L.Push(lua.LNumber(e.doc.HistoryLen()))
	return 1
}

// runScript runs the script mode against the application's document
// and prints the resulting text.
func (app *Application) runScript(path string) error {
	timeout := time.Duration(app.cfg.Script.TimeoutSeconds) * time.Second
	engine := NewScriptEngine(app.doc, timeout, app.logger.WithComponent("script"))

	if err := engine.Run(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}

	app.printText()
	return nil
}
