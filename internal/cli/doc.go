// Package cli provides the interactive terminal client of the workplace
// employee manager.
//
// It replaces a browser page: an authentication screen (register, login) and
// the main view (employee table, add/edit/delete, incremental search). All
// state lives in an app.Manager passed to NewApp; this package only reads
// input, calls the manager and prints results.
//
// Not logged in:
//
//	help                 show available commands
//	register             create an account
//	login                authenticate
//	theme                toggle dark mode
//	exit | quit          leave the program
//
// Logged in:
//
//	(l)ist               show every employee
//	add                  add an employee
//	edit <id>            change an employee
//	delete <id>          delete an employee (asks for confirmation)
//	find <field> [value] set one search field (id, name, contact, email);
//	                     the table is refreshed once typing pauses
//	find clear           clear every search field
//	search <query>       match query against any field
//	count                show the number of employees
//	export <file.xlsx>   write every employee to an Excel workbook
//	whoami               show the logged-in user
//	theme                toggle dark mode
//	logout               log out
//	exit | quit          leave the program
package cli
