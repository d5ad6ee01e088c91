package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/krapaoshare/krapao-go/internal/common"
)

// APIConfig carries everything needed to talk to the KrapaoShare API.
type APIConfig struct {
	BaseURL string
	Token   string
	UserID  string
}

// LoadAPIConfig resolves the API configuration with this precedence:
// 1. Viper configuration (config file, flags, or KRAPAO_ env vars)
// 2. Direct environment variables (KRAPAOSHARE_*)
func LoadAPIConfig() (*APIConfig, error) {
	cfg := &APIConfig{
		BaseURL: viper.GetString("api.base_url"),
		Token:   viper.GetString("api.token"),
		UserID:  viper.GetString("session.user_id"),
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("KRAPAOSHARE_API_URL")
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv("KRAPAOSHARE_API_TOKEN")
	}
	if cfg.Token == "" {
		if path := viper.GetString("api.token_file"); path != "" {
			raw, err := os.ReadFile(ExpandPath(path))
			if err != nil {
				return nil, common.NewUserError(
					"Unable to read the API token file. Check api.token_file in your config.",
					common.ErrInvalidConfig,
				)
			}
			cfg.Token = strings.TrimSpace(string(raw))
		}
	}
	if cfg.UserID == "" {
		cfg.UserID = os.Getenv("KRAPAOSHARE_USER_ID")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the required connection settings are present.
func (c *APIConfig) Validate() error {
	if c.BaseURL == "" {
		return common.NewUserError(
			"The API base URL is not configured. Set api.base_url in the config file, KRAPAO_API_BASE_URL, or --api-url.",
			common.ErrMissingConfig,
		)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return common.NewUserError(
			"The API base URL must start with http:// or https://.",
			common.ErrInvalidConfig,
		)
	}
	return nil
}
