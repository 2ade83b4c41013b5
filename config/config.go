package config

import "os"

// Config is read once at process start and passed down explicitly; nothing in
// the request path touches the environment.
type Config struct {
	Port      string
	JWTSecret string
	DBPath    string
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "3000"),
		JWTSecret: getenv("JWT_SECRET", "change-me"),
		DBPath:    getenv("DB_PATH", "./data/jobtracker.sqlite"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
