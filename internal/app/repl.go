package app

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const replHelp = `Commands:
  append <text>                append text to the document
  insert <offset> <text>       insert text at a character offset
  delete <start> <end>         delete characters in [start, end)
  replace <start> <end> <text> replace characters in [start, end)
  undo                         undo the last edit
  show                         print the current text
  history                      show undo history depth
  clear                        drop all undo history
  help                         show this help
  quit                         exit`

// runInteractive runs the line-oriented editing session.
func (app *Application) runInteractive() error {
	fmt.Fprintln(app.out, "quill interactive session. Type 'help' for commands.")

	scanner := bufio.NewScanner(app.in)
	for {
		fmt.Fprint(app.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if app.execCommand(line) {
			break
		}
	}

	return scanner.Err()
}

// execCommand executes one session command.
// Returns true when the session should end.
func (app *Application) execCommand(line string) bool {
	cmd, rest := splitCommand(line)

	switch cmd {
	case "append":
		app.doc.Append(rest)
		app.printText()

	case "insert":
		args, text := splitArgs(rest, 1)
		offset, err := parseInts(args)
		if err != nil {
			fmt.Fprintln(app.out, "usage: insert <offset> <text>")
			return false
		}
		if _, err := app.doc.Insert(offset[0], text); err != nil {
			fmt.Fprintf(app.out, "error: %v\n", err)
			return false
		}
		app.printText()

	case "delete":
		args, _ := splitArgs(rest, 2)
		bounds, err := parseInts(args)
		if err != nil {
			fmt.Fprintln(app.out, "usage: delete <start> <end>")
			return false
		}
		if _, err := app.doc.Delete(bounds[0], bounds[1]); err != nil {
			fmt.Fprintf(app.out, "error: %v\n", err)
			return false
		}
		app.printText()

	case "replace":
		args, text := splitArgs(rest, 2)
		bounds, err := parseInts(args)
		if err != nil {
			fmt.Fprintln(app.out, "usage: replace <start> <end> <text>")
			return false
		}
		if _, err := app.doc.Replace(bounds[0], bounds[1], text); err != nil {
			fmt.Fprintf(app.out, "error: %v\n", err)
			return false
		}
		app.printText()

	case "undo":
		app.undo()
		app.printText()

	case "show":
		app.printText()

	case "history":
		fmt.Fprintf(app.out, "%d undoable state(s)\n", app.doc.HistoryLen())

	case "clear":
		app.doc.ClearHistory()
		fmt.Fprintln(app.out, "history cleared")

	case "help":
		fmt.Fprintln(app.out, replHelp)

	case "quit", "exit":
		return true

	default:
		fmt.Fprintf(app.out, "unknown command %q (try 'help')\n", cmd)
	}

	return false
}

// splitCommand splits a line into its command word and the remainder.
func splitCommand(line string) (cmd, rest string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = parts[0]
	if len(parts) == 2 {
		rest = parts[1]
	}
	return cmd, rest
}

// splitArgs splits off n space-separated arguments, returning them and
// the untrimmed remainder so inserted text may contain spaces.
func splitArgs(s string, n int) (args []string, rest string) {
	rest = s
	for i := 0; i < n; i++ {
		parts := strings.SplitN(rest, " ", 2)
		args = append(args, parts[0])
		if len(parts) == 2 {
			rest = parts[1]
		} else {
			rest = ""
		}
	}
	return args, rest
}

// parseInts parses every argument as an integer.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
