// Package api contains the HTTP handlers for component generation and
// export, together with the error-to-status mapping that keeps internal
// error details out of client responses.
package api
