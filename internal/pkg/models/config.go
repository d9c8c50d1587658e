package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Google   GoogleConfig
	Twilio   TwilioConfig
	Routing  RoutingConfig
	SOS      SOSConfig
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

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains structured logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}

// GoogleConfig contains the routing provider configuration
type GoogleConfig struct {
	APIKey        string
	DirectionsURL string
	TimeoutSec    int
}

// TwilioConfig contains the notification provider configuration
type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	SMSNumber      string
	WhatsAppNumber string
	BaseURL        string
	TimeoutSec     int
}

// RoutingConfig contains tunables for the route scoring pipeline
type RoutingConfig struct {
	SampleIntervalMeters  float64
	SegmentRadiusMeters   float64
	SegmentCacheTTLSec    int
	SegmentCachePrecision uint
}

// SOSConfig contains tunables for the SOS pipeline
type SOSConfig struct {
	SafeSpotRadiusMeters float64
	TrackingBaseURL      string
}
