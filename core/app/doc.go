// Package app holds project-level settings shared by every command: project
// name, environment and the debug switch.
package app
