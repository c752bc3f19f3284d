// Package integrity provides health checks for the lake and its database.
//
// # Checks Provided
//
//   - Storage: Checks that every bucket and space folder of the layout exists in the object store.
//     Missing ones can be provisioned on request.
//   - Database: Validates that the connected database schema matches the pipeline models (columns, types).
//   - Runs: Reconciles succeeded pipeline runs with the backup objects of the pipeline space.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/database : Runs database schema check.
//   - GET /integrity/runs : Runs the run/backup reconciliation.
package integrity
