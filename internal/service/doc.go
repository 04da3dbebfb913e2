// Package service contains the application's business logic, composing
// the completion provider, extractor, and stores behind the HTTP layer.
package service
