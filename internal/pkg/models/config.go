package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Auth     AuthConfig
	Notify   NotifyConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains OTP lifecycle tunables
type OTPConfig struct {
	ExpiryMinutes   int
	CooldownSeconds int
	MaxAttempts     int
}

// Session backend selectors
const (
	AuthBackendRedis  = "redis"
	AuthBackendMemory = "memory"
)

// OTP delivery channel selectors
const (
	NotifyChannelNATS     = "nats"
	NotifyChannelLoopback = "loopback"
)

// AuthConfig selects the concrete session backend wiring at startup
type AuthConfig struct {
	Backend        string // "redis" or "memory"
	RequestTimeout int    // per outbound call, in seconds
}

// NotifyConfig selects the OTP delivery channel
type NotifyConfig struct {
	Channel string // "nats" or "loopback"
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
