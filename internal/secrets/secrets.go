package secrets

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// EnvAPIKey is the environment variable holding the OpenRouter key.
	EnvAPIKey = "OPENROUTER_API_KEY"
	// EnvSecretsPath overrides the default secrets file location.
	EnvSecretsPath = "PROMPTGEN_SECRETS"

	defaultSecretsPath = "secrets.toml"
)

// ErrMissingAPIKey is returned when neither the secrets file nor the
// environment provides a key. The pipeline cannot start without it.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY not found in secrets file or environment")

type secretsFile struct {
	OpenRouterAPIKey string `toml:"OPENROUTER_API_KEY"`
}

// APIKey resolves the OpenRouter API key, checking the hosted secrets
// file first and the environment second.
func APIKey() (string, error) {
	if key := fromFile(secretsPath()); key != "" {
		return key, nil
	}
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

func secretsPath() string {
	if path := os.Getenv(EnvSecretsPath); path != "" {
		return path
	}
	return defaultSecretsPath
}

func fromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		// A missing secrets file is normal for local runs; the
		// environment variable is the fallback.
		return ""
	}

	var sf secretsFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse secrets file %s: %v\n", path, err)
		return ""
	}

	return sf.OpenRouterAPIKey
}
