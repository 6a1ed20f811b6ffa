package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectContentFile returns the first site content file found in the
// current directory, or "" to use the built-in copy.
func detectContentFile() string {
	for _, name := range []string{"site.yml", "site.yaml", "content.yml", "content.yaml"} {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to serviqo! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	contentFile := detectContentFile()
	if contentFile != "" {
		fmt.Printf("Detected site content: %s\n\n", contentFile)
	}

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port to listen on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory for the SQLite database",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Site content file (leave blank for the built-in copy)",
		Default: contentFile,
	}
	if cfg.ContentFile, err = contentPrompt.Run(); err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Select log format",
		Items: []string{
			"json    - structured, for production",
			"console - human readable, for development",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogFormatJSON, LogFormatConsole}[formatIdx]

	// 5. Static build output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static build",
		Default: cfg.Export.OutputDir,
	}
	if cfg.Export.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 6. Extra asset patterns.
	assetsPrompt := promptui.Prompt{
		Label:   "Extra asset patterns to copy (comma-separated, leave blank for defaults)",
		Default: "",
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if assetsStr != "" {
		cfg.Export.Assets = append(cfg.Export.Assets, splitAndTrim(assetsStr)...)
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

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
