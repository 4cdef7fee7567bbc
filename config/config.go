package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	// DB: MYSQL_URL / DATABASE_URL win over the individual parts.
	MySQLURL    string `envconfig:"MYSQL_URL"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBUser      string `envconfig:"DB_USER" default:"root"`
	DBPass      string `envconfig:"DB_PASS"`
	DBHost      string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort      string `envconfig:"DB_PORT" default:"3306"`
	DBName      string `envconfig:"DB_NAME" default:"hotel_db"`
	SeedDemo    bool   `envconfig:"SEED_DEMO" default:"false"`

	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"12"`

	CorsOrigins string `envconfig:"CORS_ORIGINS"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	ReceiptTitle   string `envconfig:"RECEIPT_TITLE" default:"HOTEL RECEIPT"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"Rs."`
}

// Load reads an optional .env file and then the process environment.
// The returned bool reports whether a .env file was loaded.
func Load() (Config, bool, error) {
	loaded := godotenv.Load() == nil

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, loaded, err
	}
	return c, loaded, nil
}

// CorsOriginList splits CORS_ORIGINS on commas; empty means "*".
func (c Config) CorsOriginList() []string {
	raw := strings.TrimSpace(c.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
