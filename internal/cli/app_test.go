package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/workplace/internal/app"
	"github.com/dmitrijs2005/workplace/internal/config"
	"github.com/dmitrijs2005/workplace/internal/logging"
	"github.com/dmitrijs2005/workplace/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// immediate makes login transitions synchronous and input line-based.
func immediate(t *testing.T) {
	t.Helper()
	oldAfter, oldTerm := afterFunc, isTerminal
	t.Cleanup(func() { afterFunc, isTerminal = oldAfter, oldTerm })

	afterFunc = func(_ time.Duration, f func()) func() bool {
		f()
		return func() bool { return false }
	}
	isTerminal = func(int) bool { return false }
}

func newTestApp(t *testing.T, script ...string) (*App, *app.Manager, *storage.MemoryRepository, *bytes.Buffer) {
	t.Helper()
	immediate(t)

	repo := storage.NewMemoryRepository()
	m := app.NewManager(repo, logging.Nop())
	require.NoError(t, m.Load(context.Background()))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Storage = config.StorageMemory
	cfg.SearchDebounce = time.Hour

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	return NewApp(cfg, m, logging.Nop(), in, &out), m, repo, &out
}

func TestApp_EmployeeLifecycle(t *testing.T) {
	a, m, repo, out := newTestApp(t,
		"login", "admin@workplace.com", "work123",
		"add", "E1", "Ann Lee", "555", "",
		"add", "E1", "Other", "556", "",
		"add", "", "Nobody", "557", "",
		"edit E1", "Anna Lee", "", "anna@acme.io",
		"edit E9",
		"whoami",
		"delete E1", "n",
		"delete E1", "y",
		"count",
		"logout",
		"exit",
	)

	a.Run(context.Background())
	s := out.String()

	assert.Contains(t, s, "Please login or register.")
	assert.Contains(t, s, "Login successful! Welcome back!")
	assert.Contains(t, s, "Logged in as admin@workplace.com (admin)")
	assert.Contains(t, s, "Employee added successfully!")
	assert.Contains(t, s, "Employee ID already exists!")
	assert.Contains(t, s, "Please fill required fields (*)")
	assert.Contains(t, s, "E1 | Anna Lee | 555     | anna@acme.io")
	assert.Contains(t, s, "Employee updated successfully!")
	assert.Contains(t, s, "Employee not found!")
	assert.Contains(t, s, "Admin, admin@workplace.com (admin)")
	assert.Contains(t, s, "Cancelled.")
	assert.Contains(t, s, "Employee deleted successfully!")
	assert.Contains(t, s, "Employees: 0")
	assert.Contains(t, s, "Logged out successfully!")
	assert.True(t, strings.HasSuffix(s, "Bye!\n"))

	assert.False(t, m.IsLoggedIn())
	_, err := repo.Get(context.Background(), "currentUser")
	require.ErrorIs(t, err, storage.ErrNotFound)
	stored, err := repo.Get(context.Background(), "employees")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, stored)
}

func TestApp_RegisterAndLogin(t *testing.T) {
	a, m, _, out := newTestApp(t,
		"register", "Jo Smith", "", "123456", "",
		"register", "Jo Smith", "jo@acme.io", "12345", "",
		"register", "Jo Smith", "jo@acme.io", "secret1", "",
		"register", "Jo Again", "jo@acme.io", "secret2", "hr",
		"login", "jo@acme.io", "wrong",
		"login", "jo@acme.io", "secret1",
	)

	a.Run(context.Background())
	s := out.String()

	assert.Contains(t, s, "Please fill required fields (*)")
	assert.Contains(t, s, "Password must be at least 6 characters")
	assert.Contains(t, s, "Account created! Please login.")
	assert.Contains(t, s, "Email already registered!")
	assert.Contains(t, s, "Invalid credentials! Demo: admin@workplace.com / work123")
	assert.Contains(t, s, "Logged in as jo@acme.io (employee)")
	assert.Contains(t, s, "No employees found.")

	id, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Jo Smith", id.FullName)
}

func TestApp_RestoredSessionShowsMainView(t *testing.T) {
	a, m, _, out := newTestApp(t, "exit")
	_, err := m.Login(context.Background(), "admin@workplace.com", "work123")
	require.NoError(t, err)

	a.Run(context.Background())

	assert.Contains(t, out.String(), "Logged in as admin@workplace.com (admin)")
	assert.NotContains(t, out.String(), "Please login or register.")
}

func TestApp_FindIsDebounced(t *testing.T) {
	ctx := context.Background()
	a, m, _, out := newTestApp(t)
	_, err := m.Login(ctx, "admin@workplace.com", "work123")
	require.NoError(t, err)
	for _, e := range [][4]string{
		{"1", "John Smith", "555-1234", "john@acme.io"},
		{"2", "Jane Doe", "555-9999", ""},
	} {
		_, err := m.AddEmployee(ctx, e[0], e[1], e[2], e[3])
		require.NoError(t, err)
	}

	require.NoError(t, a.Find(ctx, []string{"name", "j"}))
	require.NoError(t, a.Find(ctx, []string{"contact", "555-1"}))
	assert.Empty(t, out.String())

	require.True(t, a.search.Flush())
	s := out.String()
	assert.Contains(t, s, `Filter: name~"j" contact~"555-1" (1 of 2)`)
	assert.Contains(t, s, "John Smith")
	assert.NotContains(t, s, "Jane Doe")

	out.Reset()
	require.NoError(t, a.Find(ctx, nil))
	assert.Equal(t, "Filter: name~\"j\" contact~\"555-1\"\n", out.String())

	require.ErrorContains(t, a.Find(ctx, []string{"salary", "1"}), "search field")

	out.Reset()
	require.NoError(t, a.Find(ctx, []string{"clear"}))
	require.True(t, a.search.Flush())
	assert.Contains(t, out.String(), "(2 of 2)")
}

func TestApp_SearchThemeAndExport(t *testing.T) {
	ctx := context.Background()
	a, m, _, out := newTestApp(t)

	path := filepath.Join(t.TempDir(), "reports", "employees.xlsx")
	require.Error(t, a.Export(ctx, path))

	_, err := m.Login(ctx, "admin@workplace.com", "work123")
	require.NoError(t, err)
	_, err = m.AddEmployee(ctx, "E1", "Ann", "555", "ann@acme.io")
	require.NoError(t, err)

	require.NoError(t, a.Search(ctx, "ACME"))
	assert.Contains(t, out.String(), "Matches: 1 of 1")

	require.NoError(t, a.Theme(ctx))
	assert.Contains(t, out.String(), "Dark mode on.")
	assert.True(t, m.DarkMode())

	out.Reset()
	require.NoError(t, a.List(ctx))
	assert.True(t, strings.HasPrefix(out.String(), ansiBold))

	require.NoError(t, a.Export(ctx, path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	book, err := excelize.OpenReader(f)
	require.NoError(t, err)
	rows, err := book.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ann", rows[1][1])
}

func TestApp_ShutdownCancelsPendingTimers(t *testing.T) {
	ctx := context.Background()
	a, m, _, out := newTestApp(t)

	stopped := 0
	afterFunc = func(time.Duration, func()) func() bool {
		return func() bool {
			stopped++
			return true
		}
	}

	id, err := m.Login(ctx, "admin@workplace.com", "work123")
	require.NoError(t, err)
	a.scheduleShowApp(id)
	require.NoError(t, a.Find(ctx, []string{"name", "ann"}))

	a.Shutdown()
	a.Shutdown()

	assert.Equal(t, 1, stopped)
	assert.False(t, a.search.Flush(), "search render still pending")
	assert.Empty(t, out.String())
}
