package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the accepted request body size in megabytes.
	// Target child sets arrive as full desired-state payloads, so this
	// bounds how large a reconciliation request may be.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// BodyLimitBytes returns the body limit in bytes, falling back to the
// default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = 4
	}
	return mb * 1024 * 1024
}
