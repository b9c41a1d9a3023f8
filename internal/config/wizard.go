package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the essential settings and saves them to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Mission Control setup")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Passphrase.
	passPrompt := promptui.Prompt{
		Label:    "Dashboard passphrase",
		Mask:     '*',
		Validate: validatePassphrase,
	}
	pass, err := passPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("passphrase: %w", err)
	}
	cfg.Auth.Passphrase = pass

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Storage.
	storagePrompt := promptui.Select{
		Label: "Where should client preferences be stored",
		Items: []string{
			"sqlite (survives restarts)",
			"memory (lost on restart)",
		},
	}
	idx, _, err := storagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("storage selection: %w", err)
	}
	cfg.Storage.Backend = []StorageBackend{StorageSQLite, StorageMemory}[idx]

	if cfg.Storage.Backend == StorageSQLite {
		pathPrompt := promptui.Prompt{
			Label:   "Database path",
			Default: cfg.Storage.Path,
		}
		dbPath, err := pathPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
		cfg.Storage.Path = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePassphrase(s string) error {
	if s == "" {
		return errors.New("passphrase cannot be empty")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n <= 0 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}
