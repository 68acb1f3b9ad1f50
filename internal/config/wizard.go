package config

import (
	"fmt"
	"net/mail"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the settings that usually differ per deployment and
// returns the resulting Config. The caller saves it.
func RunWizard() (*Config, error) {
	fmt.Println("Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Contact address.
	contactPrompt := promptui.Prompt{
		Label:    "Address the contact form composes mail to",
		Default:  cfg.ContactAddress,
		Validate: validateAddress,
	}
	contact, err := contactPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact address: %w", err)
	}
	cfg.ContactAddress = contact

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Mode.
	modePrompt := promptui.Select{
		Label: "Select gin mode",
		Items: []string{"release", "debug"},
	}
	_, cfg.Mode, err = modePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}

	// 4. Database location.
	dbPrompt := promptui.Prompt{
		Label:   "Preference database path",
		Default: cfg.DatabasePath,
	}
	cfg.DatabasePath, err = dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	return cfg, cfg.Validate()
}

// The address goes straight into a mailto: target, so display names and
// angle brackets are rejected.
func validateAddress(s string) error {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fmt.Errorf("not a bare email address")
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil || p < 0 || p > 65535 {
		return fmt.Errorf("port must be a number between 0 and 65535")
	}
	return nil
}
