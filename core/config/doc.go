// Package config provides configuration management for quotes-lake.
//
// It loads an optional .env file with godotenv, then uses Viper to read environment
// variables on top of defaults declared in struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - App: project name, environment, debug switch
//   - Server: HTTP server settings (port, API key, reset switch)
//   - Database: PostgreSQL/MySQL connection details
//   - Storage: MinIO credentials, local staging folder, optional layout file
//   - Log: level, format, console and file outputs
//   - Scraper: quotes site, politeness delay, retries, artifact target
//
// Keys map to environment variables by upper-casing and replacing dots with
// underscores (storage.use_ssl -> STORAGE_USE_SSL). Booleans accept yes/no/y/n/1/0.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
