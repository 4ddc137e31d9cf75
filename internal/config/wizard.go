package config

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// dataDirCandidates are checked, in order, for an entities.json to offer
// as the default data directory.
var dataDirCandidates = []string{"data", "report", "content", filepath.Join("internal", "report", "data")}

// detectDataDir returns the first candidate under root that holds an
// entities.json, or "" to use the embedded data.
func detectDataDir(root string) string {
	for _, dir := range dataDirCandidates {
		if _, err := os.Stat(filepath.Join(root, dir, "entities.json")); err == nil {
			return dir
		}
	}
	return ""
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func validateEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("not an email address")
	}
	return nil
}

func required(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to annualreport! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	dataDir := detectDataDir(".")
	if dataDir != "" {
		fmt.Printf("Detected report data in %s\n\n", dataDir)
	}

	// 1. Branding.
	title, err := (&promptui.Prompt{Label: "Site title", Default: cfg.Site.Title, Validate: required}).Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	org, err := (&promptui.Prompt{Label: "Organization", Default: cfg.Site.Organization, Validate: required}).Run()
	if err != nil {
		return nil, fmt.Errorf("organization: %w", err)
	}
	contact, err := (&promptui.Prompt{Label: "Contact email", Default: cfg.Site.ContactEmail, Validate: validateEmail}).Run()
	if err != nil {
		return nil, fmt.Errorf("contact email: %w", err)
	}
	investor, err := (&promptui.Prompt{Label: "Investor email", Default: cfg.Site.InvestorEmail, Validate: validateEmail}).Run()
	if err != nil {
		return nil, fmt.Errorf("investor email: %w", err)
	}

	// 2. Data source.
	sourcePrompt := promptui.Select{
		Label: "Report data",
		Items: []string{"embedded (built into the binary)", "directory on disk"},
	}
	if dataDir != "" {
		sourcePrompt.CursorPos = 1
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}
	if sourceIdx == 1 {
		dataDir, err = (&promptui.Prompt{Label: "Data directory", Default: dataDir, Validate: required}).Run()
		if err != nil {
			return nil, fmt.Errorf("data directory: %w", err)
		}
	} else {
		dataDir = ""
	}

	// 3. Output and server.
	outputDir, err := (&promptui.Prompt{Label: "Static export directory", Default: cfg.OutputDir, Validate: required}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	portStr, err := (&promptui.Prompt{Label: "Server port", Default: strconv.Itoa(cfg.Server.Port), Validate: validatePort}).Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// 4. Optional remote backend.
	remoteURL, err := (&promptui.Prompt{Label: "Remote backend URL (leave blank to skip)"}).Run()
	if err != nil {
		return nil, fmt.Errorf("remote url: %w", err)
	}

	cfg.Site.Title = title
	cfg.Site.Organization = org
	cfg.Site.ContactEmail = contact
	cfg.Site.InvestorEmail = investor
	cfg.DataDir = dataDir
	cfg.OutputDir = outputDir
	cfg.Server.Port = port
	cfg.Server.Watch = dataDir != ""
	cfg.Remote.URL = remoteURL

	if remoteURL != "" {
		if os.Getenv(EnvPrefix+"REMOTE__ANON_KEY") == "" {
			fmt.Printf("\nNote: Set %sREMOTE__ANON_KEY in your environment before running annualreport sync.\n", EnvPrefix)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
