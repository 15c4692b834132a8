package config

// AppConfig holds the application configuration
type AppConfig struct {
	MongoURI       string
	MongoDatabase  string
	RedisAddress   string
	ListenAddress  string
	AllowedOrigins []string
}
