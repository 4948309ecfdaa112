// Package config collects all runtime configuration from the
// environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// HTTP server
	Host   string
	Port   string
	APIURL string

	// Database
	DBPath string

	// The two people sharing the budget
	Users []string

	// Optional envelope seed file applied at startup
	SeedFile string

	// Logging
	LogFormat string
	LogLevel  string

	// AMQP event publishing, disabled when the URL is empty
	AMQPURL      string
	AMQPExchange string

	// How often the monthly processing is attempted, 0 disables the
	// internal ticker
	ProcessInterval time.Duration
}

func Load() *Config {
	return &Config{
		Host:   getEnv("API_HOST", ""),
		Port:   getEnv("API_PORT", "8080"),
		APIURL: getEnv("API_URL", "http://localhost:8080"),

		DBPath: getEnv("DB_PATH", "data/duobudget.db"),

		Users: splitUsers(getEnv("BUDGET_USERS", "")),

		SeedFile: getEnv("SEED_FILE", ""),

		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "duobudget.events"),

		ProcessInterval: getEnvDuration("PROCESS_INTERVAL", time.Hour),
	}
}

// Validate returns an error listing every problem with the
// configuration.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := url.Parse(c.APIURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	}

	if c.DBPath == "" {
		problems = append(problems, "the database path must not be empty")
	}

	if len(c.Users) != 2 {
		problems = append(problems, fmt.Sprintf("BUDGET_USERS must name exactly two users separated by a comma, got %d", len(c.Users)))
	} else if c.Users[0] == c.Users[1] {
		problems = append(problems, "BUDGET_USERS must name two different users")
	}

	if c.LogFormat != "json" && c.LogFormat != "human" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'json' or 'human'", c.LogFormat))
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.AMQPURL != "" {
		parsed, err := url.Parse(c.AMQPURL)
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}

		if c.AMQPExchange == "" {
			problems = append(problems, "the AMQP exchange name must not be empty when an AMQP URL is set")
		}
	}

	if c.ProcessInterval != 0 && c.ProcessInterval < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid process interval %v: must be at least one minute", c.ProcessInterval))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// UserPair returns the two configured users. Call Validate first.
func (c *Config) UserPair() [2]string {
	return [2]string{c.Users[0], c.Users[1]}
}

func splitUsers(raw string) []string {
	var users []string
	for _, user := range strings.Split(raw, ",") {
		user = strings.TrimSpace(user)
		if user != "" {
			users = append(users, user)
		}
	}

	return users
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}
