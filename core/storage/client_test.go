package storage

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		host   string
		scheme string
	}{
		{
			name:   "bare endpoint",
			cfg:    Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "loadingscreens"},
			host:   "localhost:9000",
			scheme: "http",
		},
		{
			name:   "http scheme is stripped",
			cfg:    Config{Endpoint: "http://minio.local:9000", AccessKey: "k", SecretKey: "s"},
			host:   "minio.local:9000",
			scheme: "http",
		},
		{
			name:   "https with ssl",
			cfg:    Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"},
			host:   "s3.amazonaws.com",
			scheme: "https",
		},
		{
			name:   "zero timeout falls back to default",
			cfg:    Config{Endpoint: "localhost:9000", TimeoutSeconds: 0},
			host:   "localhost:9000",
			scheme: "http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			require.NoError(t, err)

			wrapper, ok := client.(*minioClientWrapper)
			require.True(t, ok)
			assert.Equal(t, tt.host, wrapper.EndpointURL().Host)
			assert.Equal(t, tt.scheme, wrapper.EndpointURL().Scheme)
		})
	}
}

func TestNewClient_InvalidEndpoint(t *testing.T) {
	_, err := NewClient(Config{Endpoint: "minio.local:9000/bucket"})
	assert.Error(t, err)
}

func TestConfig_Defaults(t *testing.T) {
	typ := reflect.TypeOf(Config{})
	tag := func(field string) string {
		f, ok := typ.FieldByName(field)
		require.True(t, ok, field)
		return f.Tag.Get("default")
	}

	assert.Equal(t, "false", tag("Enabled"))
	assert.Equal(t, "loadingscreens", tag("Bucket"))
	assert.Equal(t, "", tag("Prefix"))
	assert.Equal(t, "loadingscreens/Axe.jpeg", Config{Enabled: true, Prefix: "loadingscreens"}.ObjectKey("Axe.jpeg"))
}
