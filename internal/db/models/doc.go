// Package models contains the gorm models of the school back office.
package models
