// Package persistence implements the repository contracts on top of GORM and
// manages database connections for sqlite and postgres.
package persistence
