// Package models holds the plain data types shared by the stores, the
// session manager and the CLI.
package models

import "strings"

// Employee is a single record of the employee list. ID is the unique key;
// Name and Contact are required, Email is optional and may be empty.
type Employee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

// NewEmployee returns an Employee with every field trimmed of surrounding
// whitespace.
func NewEmployee(id, name, contact, email string) Employee {
	return Employee{
		ID:      strings.TrimSpace(id),
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
		Email:   strings.TrimSpace(email),
	}
}

// Criteria is a multi-field filter. Every non-empty field must be contained
// (case-insensitively) in the matching Employee field.
type Criteria struct {
	ID      string
	Name    string
	Contact string
	Email   string
}

// IsEmpty reports whether no field of c is set.
func (c Criteria) IsEmpty() bool {
	return c.ID == "" && c.Name == "" && c.Contact == "" && c.Email == ""
}
