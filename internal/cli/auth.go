package cli

import (
	"context"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/models"
)

// Register asks for the account details and creates the account.
func (a *App) Register(ctx context.Context) error {
	fullName, err := GetSimpleText(a.reader, "Enter full name", a)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := GetSimpleText(a.reader, "Enter role (employee, manager, hr, admin) [employee]", a)
	if err != nil {
		return err
	}
	if role == "" {
		role = models.RoleEmployee
	}

	if _, err := a.manager.Register(ctx, fullName, email, string(password), role); err != nil {
		return err
	}

	a.println("Account created! Please login.")
	return nil
}

// Login asks for credentials and starts a session. The main view follows
// after the configured delay.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.manager.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.search.Reset()
	a.println("Login successful! Welcome back!")
	a.scheduleShowApp(id)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.cancelTransition()
	a.search.Reset()

	if err := a.manager.Logout(ctx); err != nil {
		return err
	}

	a.println("Logged out successfully!")
	return nil
}

// WhoAmI prints the logged-in identity.
func (a *App) WhoAmI(context.Context) error {
	id, ok := a.manager.CurrentUser()
	if !ok {
		return common.ErrNotLoggedIn
	}
	a.printf("%s, %s\n", id.FullName, id)
	return nil
}

// Theme toggles dark mode.
func (a *App) Theme(ctx context.Context) error {
	dark, err := a.manager.ToggleTheme(ctx)
	if err != nil {
		return err
	}
	if dark {
		a.println("Dark mode on.")
	} else {
		a.println("Dark mode off.")
	}
	return nil
}
