package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/workplace/internal/app"
	"github.com/dmitrijs2005/workplace/internal/config"
	"github.com/dmitrijs2005/workplace/internal/logging"
	"github.com/dmitrijs2005/workplace/internal/models"
)

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = func(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// App is the terminal front end over a session manager.
type App struct {
	config  *config.Config
	manager *app.Manager
	log     logging.Logger
	search  *app.SearchForm
	reader  *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	transitionMu   sync.Mutex
	stopTransition func() bool
}

// NewApp wires an App reading commands from in and writing to out.
func NewApp(c *config.Config, m *app.Manager, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		manager: m,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	a.search = app.NewSearchForm(m, c.SearchDebounce, a.renderSearch)
	return a
}

// Run shows the screen matching the restored session and runs the REPL until
// the input ends or the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Shutdown()

	a.println("Welcome to Workplace (type 'help' for commands)")
	if id, ok := a.manager.CurrentUser(); ok {
		a.showApp(id)
	} else {
		a.println("Please login or register.")
	}

	runREPL(ctx, a, a.getStatus, a.reader, a)
}

// Shutdown cancels the pending debounced search and login transition. It is
// safe to call more than once and while Run is still blocked on input.
func (a *App) Shutdown() {
	a.cancelTransition()
	a.search.Stop()
}

// Write makes App an io.Writer whose writes do not interleave with the
// debounced search output.
func (a *App) Write(p []byte) (int, error) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return a.out.Write(p)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a, format, args...)
}

func (a *App) isLoggedIn() bool {
	return a.manager.IsLoggedIn()
}

func (a *App) getStatus() string {
	id, ok := a.manager.CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", id)
}

// showApp prints the main view: who is logged in, the table and the count.
func (a *App) showApp(id models.Identity) {
	a.printf("Logged in as %s\n", id)
	a.printTable(a.manager.Employees())
	a.printf("Employees: %d\n", a.manager.Count())
}

// scheduleShowApp shows the main view after the configured login delay.
func (a *App) scheduleShowApp(id models.Identity) {
	a.transitionMu.Lock()
	defer a.transitionMu.Unlock()

	if a.stopTransition != nil {
		a.stopTransition()
	}
	a.stopTransition = afterFunc(a.config.LoginDelay, func() {
		if cur, ok := a.manager.CurrentUser(); ok && cur == id {
			a.showApp(id)
		}
	})
}

func (a *App) cancelTransition() {
	a.transitionMu.Lock()
	defer a.transitionMu.Unlock()

	if a.stopTransition != nil {
		a.stopTransition()
		a.stopTransition = nil
	}
}

func (a *App) printTable(list []models.Employee) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	renderTable(a.out, list, a.manager.DarkMode())
}

// renderSearch is called by the search form once typing pauses.
func (a *App) renderSearch(c models.Criteria, result []models.Employee) {
	a.outMu.Lock()
	defer a.outMu.Unlock()

	fmt.Fprintf(a.out, "\nFilter: %s (%d of %d)\n", describeCriteria(c), len(result), a.manager.Count())
	renderTable(a.out, result, a.manager.DarkMode())
}
