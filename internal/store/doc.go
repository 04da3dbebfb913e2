// Package store defines the persistence interfaces and common errors for
// the application's data access layer. Implementations live under
// internal/platform.
package store
