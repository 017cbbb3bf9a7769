// Package main provides the entry point of SchoolHub-Admin, the back office
// service of SchoolHub. It authenticates users, students and parents against
// the database, hands out signed capability tokens bound to an active branch
// and guards the JSON API with a per module and per action permission check.
// The application uses fiber for HTTP, gorm for persistence and cobra for
// its command line.
package main
