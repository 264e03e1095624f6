package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, args []string) error
	Search(ctx context.Context, query string) error
	Count(ctx context.Context) error
	Export(ctx context.Context, path string) error
	WhoAmI(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Errors returned by handlers are printed as user-facing messages and the
// loop goes on. It exits on EOF, "exit"/"quit" or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(w, "wp %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args, w); err != nil {
			fmt.Fprintln(w, userMessage(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(w, "Available commands: (l)ist, add, edit <id>, delete <id>, find <field> [value], "+
				"find clear, search <query>, count, export <file.xlsx>, whoami, theme, logout, exit")
		} else {
			fmt.Fprintln(w, "Available commands: register, login, theme, exit")
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "theme":
		return a.Theme(ctx)
	}

	if !a.isLoggedIn() {
		fmt.Fprintln(w, "Unknown command:", cmd, "(login first, or type 'help')")
		return nil
	}

	switch cmd {
	case "l", "list":
		return a.List(ctx)
	case "add":
		return a.Add(ctx)
	case "edit", "delete":
		if len(args) != 1 {
			fmt.Fprintf(w, "Usage: %s <id>\n", cmd)
			return nil
		}
		if cmd == "edit" {
			return a.Edit(ctx, args[0])
		}
		return a.Delete(ctx, args[0])
	case "find":
		return a.Find(ctx, args)
	case "search":
		return a.Search(ctx, strings.Join(args, " "))
	case "count":
		return a.Count(ctx)
	case "export":
		if len(args) != 1 {
			fmt.Fprintln(w, "Usage: export <file.xlsx>")
			return nil
		}
		return a.Export(ctx, args[0])
	case "whoami":
		return a.WhoAmI(ctx)
	case "logout":
		return a.Logout(ctx)
	default:
		fmt.Fprintln(w, "Unknown command:", cmd)
		return nil
	}
}
