// Package utils provides common utility functions for the quotes-lake application.
// It includes helpers for lenient type conversion (query strings, environment values)
// that don't fit into domain-specific packages.
package utils
