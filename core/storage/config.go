package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication (MINIO_ROOT_USER).
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication (MINIO_ROOT_PASSWORD).
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location of the buckets (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// LocalDir is the local staging folder used for uploads and downloads.
	LocalDir string `mapstructure:"local_dir" default:"minio_local_storage"`
	// LayoutFile optionally overrides the built-in bucket/space layout with a YAML file.
	LayoutFile string `mapstructure:"layout_file" default:""`
}
