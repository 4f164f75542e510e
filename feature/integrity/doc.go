// Package integrity provides system health checks for the menu manager.
//
// # Checks Provided
//
//   - Schema: Validates that every menu table exists and carries the columns and declared types of its model.
//   - Storage: Checks that the media bucket holding menu photos exists. Optionally creates it.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
