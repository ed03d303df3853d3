package azure

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// CLIProfile is one named section of ~/.azure/config.
type CLIProfile struct {
	SubscriptionID string
	TenantID       string
	ClientID       string
}

// loadCLIProfile reads a named profile from the Azure CLI config file.
func loadCLIProfile(profile string) (*CLIProfile, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("unable to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".azure", "config")
	cfg, err := ini.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load Azure config file: %w", err)
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found in Azure config: %w", profile, err)
	}

	return &CLIProfile{
		SubscriptionID: section.Key("subscription").String(),
		TenantID:       section.Key("tenant").String(),
		ClientID:       section.Key("client_id").String(),
	}, nil
}
