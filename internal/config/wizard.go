package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to scenedash! Let's configure your dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePositiveInt,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Breakpoint.
	bpPrompt := promptui.Prompt{
		Label:    "Mobile breakpoint in pixels",
		Default:  strconv.Itoa(cfg.BreakpointPx),
		Validate: validatePositiveInt,
	}
	bpStr, err := bpPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("breakpoint: %w", err)
	}
	cfg.BreakpointPx, _ = strconv.Atoi(bpStr)

	// 3. Auto-expand.
	expandPrompt := promptui.Select{
		Label: "Open the groups leading to the current page on first load?",
		Items: []string{"no", "yes"},
	}
	expandIdx, _, err := expandPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("auto expand selection: %w", err)
	}
	cfg.AutoExpandActive = expandIdx == 1

	// 4. Sorting.
	sortPrompt := promptui.Select{
		Label: "Order menu children",
		Items: []string{
			"as declared",
			"alphabetically by name",
		},
	}
	sortIdx, _, err := sortPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sort selection: %w", err)
	}
	cfg.SortChildren = sortIdx == 1

	// 5. Navigation file.
	navPrompt := promptui.Prompt{
		Label:   "Navigation menu file (leave blank for the built-in menu)",
		Default: "",
	}
	cfg.NavigationFile, err = navPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation file: %w", err)
	}
	if cfg.NavigationFile != "" {
		if _, err := os.Stat(cfg.NavigationFile); err != nil {
			fmt.Printf("\nNote: %s does not exist yet. Write one with scenedash nav export.\n", cfg.NavigationFile)
		}
	}

	// 6. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory for the visit log",
		Default: cfg.DataDir,
	}
	cfg.DataDir, err = dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
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

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
