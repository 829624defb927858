// Package persistence provides the GORM-backed repository implementations and
// database connection management for the commerce entities.
package persistence
