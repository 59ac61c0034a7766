package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Enabled turns publishing to the bucket on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to publish into.
	Bucket string `mapstructure:"bucket" default:"loadingscreens"`
	// Prefix is prepended to every object key, e.g. "dota/".
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// ObjectKey joins the configured prefix and name.
func (c Config) ObjectKey(name string) string {
	if c.Prefix == "" {
		return name
	}
	if c.Prefix[len(c.Prefix)-1] == '/' {
		return c.Prefix + name
	}
	return c.Prefix + "/" + name
}
