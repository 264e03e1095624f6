package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/filex"
	"github.com/dmitrijs2005/workplace/internal/report"
)

// clearValue typed at the email prompt of edit empties the field.
const clearValue = "-"

// List prints every employee and the total.
func (a *App) List(context.Context) error {
	a.printTable(a.manager.Employees())
	a.printf("Employees: %d\n", a.manager.Count())
	return nil
}

// Count prints the number of employees.
func (a *App) Count(context.Context) error {
	a.printf("Employees: %d\n", a.manager.Count())
	return nil
}

// Add asks for the fields of a new employee and adds it.
func (a *App) Add(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "ID number *", a)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Name *", a)
	if err != nil {
		return err
	}
	contact, err := GetSimpleText(a.reader, "Contact *", a)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email (optional)", a)
	if err != nil {
		return err
	}

	if _, err := a.manager.AddEmployee(ctx, id, name, contact, email); err != nil {
		return err
	}

	a.println("Employee added successfully!")
	return a.List(ctx)
}

// Edit shows the employee with the given id and asks for new values. An
// empty answer keeps the current value; "-" clears the email. The id itself
// cannot be changed.
func (a *App) Edit(ctx context.Context, id string) error {
	cur, ok := a.manager.Employee(id)
	if !ok {
		return fmt.Errorf("employee %s: %w", id, common.ErrNotFound)
	}

	a.printf("Editing %s (empty answer keeps the current value)\n", cur.ID)
	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name * [%s]", cur.Name), a)
	if err != nil {
		return err
	}
	contact, err := GetSimpleText(a.reader, fmt.Sprintf("Contact * [%s]", cur.Contact), a)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s] ('%s' clears)", cur.Email, clearValue), a)
	if err != nil {
		return err
	}

	if name == "" {
		name = cur.Name
	}
	if contact == "" {
		contact = cur.Contact
	}
	switch email {
	case "":
		email = cur.Email
	case clearValue:
		email = ""
	}

	if _, err := a.manager.UpdateEmployee(ctx, cur.ID, name, contact, email); err != nil {
		return err
	}

	a.println("Employee updated successfully!")
	return a.List(ctx)
}

// Delete removes the employee with the given id after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if _, ok := a.manager.Employee(id); !ok {
		return fmt.Errorf("employee %s: %w", id, common.ErrNotFound)
	}

	ok, err := Confirm(a.reader, "Are you sure you want to delete this employee?", a)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Cancelled.")
		return nil
	}

	if err := a.manager.RemoveEmployee(ctx, id); err != nil {
		return err
	}

	a.println("Employee deleted successfully!")
	return a.List(ctx)
}

// Find sets one field of the incremental search; the filtered table is
// printed once the debounce period passes without another change.
//
//	find                 show the current fields
//	find clear           clear every field
//	find <field>         clear one field
//	find <field> <text>  set one field
func (a *App) Find(_ context.Context, args []string) error {
	switch {
	case len(args) == 0:
		a.printf("Filter: %s\n", describeCriteria(a.search.Criteria()))
		return nil
	case len(args) == 1 && args[0] == "clear":
		a.search.Clear()
		return nil
	default:
		return a.search.Set(args[0], strings.Join(args[1:], " "))
	}
}

// Search prints the employees where any field contains query.
func (a *App) Search(_ context.Context, query string) error {
	result := a.manager.Search(query)
	a.printTable(result)
	a.printf("Matches: %d of %d\n", len(result), a.manager.Count())
	return nil
}

// Export writes every employee to an Excel workbook at path.
func (a *App) Export(ctx context.Context, path string) error {
	buf, err := report.GenerateEmployeeReport(a.manager.Employees(), time.Now())
	if err != nil {
		return err
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	a.log.Info(ctx, "employees exported", "path", path)
	a.printf("Exported %d employees to %s\n", a.manager.Count(), path)
	return nil
}
