// Package models defines the raw records of the quotes pipeline and their table mappings.
package models
