// Package config builds the explicit per-invocation configuration struct.
// There is no module-level store client or credential state; every entry
// point calls Load and passes the result down by parameter.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/viper"
)

const defaultPort = 8080

// Config carries everything one invocation needs to reach the repository
// container.
type Config struct {
	ConnectionString string
	Container        string
	Port             int
}

// Load reads configuration from viper (flags, config file, APT_REPO_FUNCTION_*
// environment) with fallbacks to the raw environment names the function-app
// deployment sets (AzureWebJobsStorage, BLOB_CONTAINER,
// FUNCTIONS_CUSTOMHANDLER_PORT). Missing required values are fatal before any
// store call is made.
func Load() (Config, error) {
	cfg := Config{
		ConnectionString: firstNonEmpty(
			viper.GetString("connection_string"),
			os.Getenv("AzureWebJobsStorage"),
		),
		Container: firstNonEmpty(
			viper.GetString("container"),
			os.Getenv("BLOB_CONTAINER"),
		),
		Port: viper.GetInt("port"),
	}
	if cfg.ConnectionString == "" {
		return Config{}, missingError("storage connection string is not configured")
	}
	if cfg.Container == "" {
		return Config{}, missingError("blob container is not configured")
	}
	if cfg.Port == 0 {
		if raw := os.Getenv("FUNCTIONS_CUSTOMHANDLER_PORT"); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return Config{}, missingError("FUNCTIONS_CUSTOMHANDLER_PORT is not a number")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func missingError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
}
