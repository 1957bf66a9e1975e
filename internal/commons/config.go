package commons

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Lutefd/currency-widget/internal/format"
	"github.com/Lutefd/currency-widget/internal/worker"
)

type Config struct {
	ServerPort         uint16
	RedisAddr          string
	RedisPass          string
	RatesAPIURL        string
	RatesAPITimeout    time.Duration
	Locale             string
	CatalogRefreshSpec string
	AllowedRPS         int
	PostgresConn       string
}

const (
	decimalBase = 10
	bitSize     = 16
)

func LoadConfig() (Config, error) {
	var config Config
	var errors []string

	config.RedisAddr = os.Getenv("REDIS_ADDR")
	if config.RedisAddr == "" {
		errors = append(errors, "REDIS_ADDR is not set")
	}
	config.RedisPass = os.Getenv("REDIS_PASSWORD")

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		errors = append(errors, "SERVER_PORT is not set")
	} else {
		parsedServerPort, err := strconv.ParseUint(serverPort, decimalBase, bitSize)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid SERVER_PORT: %s", err))
		} else {
			config.ServerPort = uint16(parsedServerPort)
		}
	}

	config.RatesAPIURL = getEnvString("RATES_API_URL", worker.FrankfurterBaseURL)
	config.Locale = getEnvString("WIDGET_LOCALE", format.DefaultLocale)
	config.CatalogRefreshSpec = getEnvString("CATALOG_REFRESH_SPEC", DefaultCatalogRefresh)

	if timeout := os.Getenv("RATES_API_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid RATES_API_TIMEOUT: %s", err))
		} else {
			config.RatesAPITimeout = parsed
		}
	}

	config.AllowedRPS = DefaultAllowedRPS
	if rps := os.Getenv("RATE_LIMIT_RPS"); rps != "" {
		parsed, err := strconv.Atoi(rps)
		if err != nil || parsed <= 0 {
			errors = append(errors, fmt.Sprintf("invalid RATE_LIMIT_RPS: %q", rps))
		} else {
			config.AllowedRPS = parsed
		}
	}

	conn, pgErrors := postgresConn()
	errors = append(errors, pgErrors...)
	config.PostgresConn = conn

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Println("Configuration Error:", err)
		}
		return Config{}, fmt.Errorf("configuration errors occurred")
	}

	return config, nil
}

// postgresConn builds the log sink connection string. The sink is optional,
// but once any POSTGRES_* variable is set all of them are required.
func postgresConn() (string, []string) {
	keys := []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_NAME"}
	values := make(map[string]string, len(keys))
	var missing []string
	for _, key := range keys {
		values[key] = os.Getenv(key)
		if values[key] == "" {
			missing = append(missing, key+" is not set")
		}
	}
	if len(missing) == len(keys) {
		return "", nil
	}
	if len(missing) > 0 {
		return "", missing
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		values["POSTGRES_USER"], values["POSTGRES_PASSWORD"], values["POSTGRES_HOST"],
		values["POSTGRES_PORT"], values["POSTGRES_NAME"]), nil
}

func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
