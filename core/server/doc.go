// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key protecting every route and
// whether the destructive lake reset endpoint is exposed.
package server
