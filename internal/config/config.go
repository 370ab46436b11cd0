package config

import "os"

type Config struct {
	HTTPAddr    string
	SQLitePath  string
	RedisAddr   string
	RabbitURL   string
	JWTSecret   string
	ServiceName string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		SQLitePath:  getenv("SQLITE_PATH", "shoplink.db"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		RabbitURL:   os.Getenv("RABBITMQ_URL"),
		JWTSecret:   getenv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
		ServiceName: getenv("SERVICE_NAME", "shoplink-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
