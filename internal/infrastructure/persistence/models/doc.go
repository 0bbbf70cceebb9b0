// Package models contains the GORM database models mapping domain entities to
// the meetings and pdfs tables.
package models
