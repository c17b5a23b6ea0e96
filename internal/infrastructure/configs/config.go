package configs

import (
	"fmt"
	"time"

	"github.com/hilthontt/sovereign/internal/infrastructure/env"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	HTTP         HTTPConfig         `koanf:"http"`
	RateLimiter  RateLimiterConfig  `koanf:"rateLimiter"`
	Logger       LoggerConfig       `koanf:"logger"`
	Tracing      TracingConfig      `koanf:"tracing"`
	Database     DatabaseConfig     `koanf:"database"`
	Encyclopedia EncyclopediaConfig `koanf:"encyclopedia"`
	Vitals       VitalsConfig       `koanf:"vitals"`
	Dispatcher   DispatcherConfig   `koanf:"dispatcher"`
	Messaging    MessagingConfig    `koanf:"messaging"`
	Mission      MissionConfig      `koanf:"mission"`
}

type HTTPConfig struct {
	Host           string        `koanf:"host"`
	Port           uint16        `koanf:"port"`
	AllowedOrigins []string      `koanf:"allowed_origins"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type RateLimiterConfig struct {
	Enabled              bool          `koanf:"enabled"`
	RequestsPerTimeFrame int           `koanf:"requestsPerTimeFrame"`
	TimeFrame            time.Duration `koanf:"timeFrame"`
}

type LoggerConfig struct {
	FilePath string `koanf:"file_path"`
	Encoding string `koanf:"encoding"`
	Level    string `koanf:"level"`
	Logger   string `koanf:"logger"`
}

type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Endpoint    string `koanf:"endpoint"`
	Environment string `koanf:"environment"`
}

type DatabaseConfig struct {
	Path         string        `koanf:"path"`
	BusyTimeout  time.Duration `koanf:"busy_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type EncyclopediaConfig struct {
	BaseURL   string        `koanf:"base_url"`
	UserAgent string        `koanf:"user_agent"`
	Timeout   time.Duration `koanf:"timeout"`
}

type VitalsConfig struct {
	ProcPath       string        `koanf:"proc_path"`
	SampleInterval time.Duration `koanf:"sample_interval"`
}

type DispatcherConfig struct {
	QueueSize   int           `koanf:"queue_size"`
	TaskTimeout time.Duration `koanf:"task_timeout"`
}

// MessagingConfig enables AMQP publishing of executed intents when URI is set.
type MessagingConfig struct {
	URI      string `koanf:"uri"`
	Exchange string `koanf:"exchange"`
}

type MissionConfig struct {
	WorldContext string `koanf:"world_context"`
}

const (
	DefaultWorldContext = "2026-02-19: Pakistan Tech & Economy Rising | Global Volatility"
	DefaultUserAgent    = "SovereignApp_V1/2026.02 (GodTierAgent; Contact: admin@localhost)"
)

// Load reads the YAML file at path (optional), then applies defaults and
// environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyDefaults(k)
	if err := applyEnvOverrides(k); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port == 0 {
		return fmt.Errorf("http.port must be set")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must be set")
	}
	if c.Encyclopedia.BaseURL == "" {
		return fmt.Errorf("encyclopedia.base_url must be set")
	}
	if c.Encyclopedia.Timeout <= 0 {
		return fmt.Errorf("encyclopedia.timeout must be positive")
	}
	if c.Dispatcher.QueueSize <= 0 {
		return fmt.Errorf("dispatcher.queue_size must be positive")
	}
	if c.RateLimiter.Enabled && (c.RateLimiter.RequestsPerTimeFrame <= 0 || c.RateLimiter.TimeFrame <= 0) {
		return fmt.Errorf("rateLimiter requires positive requestsPerTimeFrame and timeFrame")
	}
	return nil
}

func applyDefaults(k *koanf.Koanf) {
	// HTTP defaults
	setDefault(k, "http.host", "0.0.0.0")
	setDefault(k, "http.port", 8000)
	setDefault(k, "http.read_timeout", 10*time.Second)
	setDefault(k, "http.write_timeout", 30*time.Second)
	setDefault(k, "http.idle_timeout", time.Minute)
	setDefault(k, "http.request_timeout", 60*time.Second)
	setDefault(k, "http.allowed_origins", []string{"*"})

	// Rate limiter defaults
	setDefault(k, "rateLimiter.enabled", true)
	setDefault(k, "rateLimiter.requestsPerTimeFrame", 60)
	setDefault(k, "rateLimiter.timeFrame", time.Minute)

	// Logger defaults
	setDefault(k, "logger.file_path", "")
	setDefault(k, "logger.encoding", "json")
	setDefault(k, "logger.level", "info")
	setDefault(k, "logger.logger", "zap")

	// Tracing defaults
	setDefault(k, "tracing.enabled", false)
	setDefault(k, "tracing.endpoint", "http://localhost:4318/v1/traces")
	setDefault(k, "tracing.environment", "development")

	// Persistence defaults
	setDefault(k, "database.path", "sovereign.db")
	setDefault(k, "database.busy_timeout", 5*time.Second)
	setDefault(k, "database.write_timeout", 2*time.Second)

	// Encyclopedia defaults
	setDefault(k, "encyclopedia.base_url", "https://en.wikipedia.org/api/rest_v1")
	setDefault(k, "encyclopedia.user_agent", DefaultUserAgent)
	setDefault(k, "encyclopedia.timeout", 5*time.Second)

	// Vitals defaults
	setDefault(k, "vitals.proc_path", "/proc")
	setDefault(k, "vitals.sample_interval", 100*time.Millisecond)

	// Dispatcher defaults
	setDefault(k, "dispatcher.queue_size", 64)
	setDefault(k, "dispatcher.task_timeout", 30*time.Second)

	// Messaging defaults
	setDefault(k, "messaging.uri", "")
	setDefault(k, "messaging.exchange", "sovereign")

	setDefault(k, "mission.world_context", DefaultWorldContext)
}

func applyEnvOverrides(k *koanf.Koanf) error {
	// HTTP config from env
	if host := env.GetString("HTTP_HOST", ""); host != "" {
		k.Set("http.host", host)
	}
	if port := env.GetInt("HTTP_PORT", 0); port > 0 {
		k.Set("http.port", port)
	}
	if readTimeout := env.GetInt("HTTP_READ_TIMEOUT_SECONDS", 0); readTimeout > 0 {
		k.Set("http.read_timeout", time.Duration(readTimeout)*time.Second)
	}
	if writeTimeout := env.GetInt("HTTP_WRITE_TIMEOUT_SECONDS", 0); writeTimeout > 0 {
		k.Set("http.write_timeout", time.Duration(writeTimeout)*time.Second)
	}

	// Rate limiter config from env
	if requests := env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 0); requests > 0 {
		k.Set("rateLimiter.requestsPerTimeFrame", requests)
	}
	if frame := env.GetDuration("RATE_LIMIT_TIME_FRAME", 0); frame > 0 {
		k.Set("rateLimiter.timeFrame", frame)
	}
	if _, ok := env.Lookup("RATE_LIMIT_ENABLED"); ok {
		k.Set("rateLimiter.enabled", env.GetBool("RATE_LIMIT_ENABLED", true))
	}

	// Logger config from env
	for envKey, cfgKey := range map[string]string{
		"LOGGER_FILE_PATH": "logger.file_path",
		"LOGGER_ENCODING":  "logger.encoding",
		"LOGGER_LEVEL":     "logger.level",
		"LOGGER_LOGGER":    "logger.logger",
	} {
		if val := env.GetString(envKey, ""); val != "" {
			k.Set(cfgKey, val)
		}
	}

	// Tracing config from env
	if endpoint := env.GetString("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ""); endpoint != "" {
		k.Set("tracing.endpoint", endpoint)
		k.Set("tracing.enabled", true)
	}
	if environment := env.GetString("ENVIRONMENT", ""); environment != "" {
		k.Set("tracing.environment", environment)
	}

	// Persistence config from env
	if path := env.GetString("SOVEREIGN_DB_PATH", ""); path != "" {
		k.Set("database.path", path)
	}

	// Encyclopedia config from env
	if baseURL := env.GetString("ENCYCLOPEDIA_BASE_URL", ""); baseURL != "" {
		k.Set("encyclopedia.base_url", baseURL)
	}
	if userAgent := env.GetString("ENCYCLOPEDIA_USER_AGENT", ""); userAgent != "" {
		k.Set("encyclopedia.user_agent", userAgent)
	}
	if raw, ok := env.Lookup("ENCYCLOPEDIA_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("ENCYCLOPEDIA_TIMEOUT: %w", err)
		}
		k.Set("encyclopedia.timeout", timeout)
	}

	// Messaging config from env
	if uri := env.GetString("RABBITMQ_URI", ""); uri != "" {
		k.Set("messaging.uri", uri)
	}

	if worldContext := env.GetString("SOVEREIGN_WORLD_CONTEXT", ""); worldContext != "" {
		k.Set("mission.world_context", worldContext)
	}

	return nil
}

// setDefault only sets the value if the key doesn't already exist
func setDefault(k *koanf.Koanf, key string, value any) {
	if !k.Exists(key) {
		k.Set(key, value)
	}
}
