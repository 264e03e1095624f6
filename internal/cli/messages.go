package cli

import (
	"errors"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/users"
)

// userMessage turns an error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return "Please fill required fields (*)"
	case errors.Is(err, common.ErrDuplicateID):
		return "Employee ID already exists!"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "Email already registered!"
	case errors.Is(err, common.ErrWeakPassword):
		return "Password must be at least 6 characters"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid credentials! Demo: " + users.AdminEmail + " / " + users.AdminPassword
	case errors.Is(err, common.ErrNotFound):
		return "Employee not found!"
	case errors.Is(err, common.ErrNotLoggedIn):
		return "Please login first."
	case errors.Is(err, common.ErrInvalidSearchField):
		return "Unknown search field, use one of: id, name, contact, email"
	default:
		return "Error: " + err.Error()
	}
}
