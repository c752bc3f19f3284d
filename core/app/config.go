package app

// Config holds project-wide settings.
type Config struct {
	// ProjectName labels logs and the CLI banner.
	ProjectName string `mapstructure:"project_name" default:"quotes-lake"`
	// Env is the deployment environment (dev, staging, prod).
	Env string `mapstructure:"env" default:"dev"`
	// Debug exposes full local paths in errors and enables verbose output.
	Debug bool `mapstructure:"debug" default:"false"`
}

// IsProduction reports whether the app runs in a production environment.
func (c Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}
