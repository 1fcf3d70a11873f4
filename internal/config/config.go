package config

import "time"

const defaultCORSMaxAge = 86400

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
// MaxAge defaults to 86400; an explicit 0 disables preflight caching.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout defaults to zero so streamed completions are never cut off.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LLMConfig holds the remote language-model API settings.
type LLMConfig struct {
	APIKey  string `yaml:"api_key"  env:"DEEPSEEK_API_KEY"  env-required:"true"`
	BaseURL string `yaml:"base_url" env:"DEEPSEEK_BASE_URL" env-default:"https://api.deepseek.com"`
	Model   string `yaml:"model"    env:"DEEPSEEK_MODEL"    env-default:"deepseek-chat"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
// Enabled defaults to true.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// newConfig returns a Config holding the defaults whose zero value is a valid
// setting. They cannot be env-default tags: cleanenv applies those to every
// field left at its zero value, including one set to zero in the YAML file.
func newConfig() Config {
	return Config{
		CORS:    CORSConfig{MaxAge: defaultCORSMaxAge},
		Metrics: MetricsConfig{Enabled: true},
	}
}
