package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	LogLevel        string
	OperatorWorkers int
	MigrateOnStart  bool

	// BalanceRecomputeSchedule is a cron expression; empty disables the job.
	BalanceRecomputeSchedule string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the real environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		LogLevel:         "info",
		OperatorWorkers:  1,
	}

	stringVars := map[string]*string{
		"POSTGRES_ADDRESS":           &env.PostgresAddress,
		"POSTGRES_PORT":              &env.PostgresPort,
		"POSTGRES_DB":                &env.PostgresDB,
		"POSTGRES_USERNAME":          &env.PostgresUsername,
		"POSTGRES_PASSWORD":          &env.PostgresPassword,
		"HTTP_PORT":                  &env.HTTPPort,
		"LOG_LEVEL":                  &env.LogLevel,
		"BALANCE_RECOMPUTE_SCHEDULE": &env.BalanceRecomputeSchedule,
	}
	for name, target := range stringVars {
		if value := os.Getenv(name); len(value) != 0 {
			*target = value
		}
	}

	if value := os.Getenv("OPERATOR_WORKERS"); len(value) != 0 {
		workers, err := strconv.Atoi(value)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("OPERATOR_WORKERS must be a positive integer, got %q", value)
		}
		env.OperatorWorkers = workers
	}

	if value := os.Getenv("MIGRATE_ON_START"); len(value) != 0 {
		migrate, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("MIGRATE_ON_START must be a boolean, got %q", value)
		}
		env.MigrateOnStart = migrate
	}

	if env.BalanceRecomputeSchedule != "" {
		if _, err := cron.ParseStandard(env.BalanceRecomputeSchedule); err != nil {
			return nil, fmt.Errorf("BALANCE_RECOMPUTE_SCHEDULE: %w", err)
		}
	}

	return &env, nil
}

// PostgresURL builds the lib/pq connection string.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
