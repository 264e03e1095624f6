package common

// Keys of the local key/value store. Values are JSON documents except
// DarkModeKey, which holds the literal string "true" or "false".
const (
	EmployeesKey   = "employees"
	UsersKey       = "users"
	CurrentUserKey = "currentUser"
	DarkModeKey    = "darkMode"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6
