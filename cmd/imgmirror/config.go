package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"imgmirror/pkg/config"
	"imgmirror/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage imgmirror configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables
  - Configuration file
  - Default values (lowest priority)`,
}

// initCmd represents the config init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file will be created in the current directory as '.imgmirror.yaml'
unless a different path is specified with the --config flag.`,
	RunE: runConfigInit,
}

// showCmd represents the config show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Show the configuration a mirror run would use, with values from all sources
merged in order of priority.`,
	RunE: runConfigShow,
}

// validateCmd represents the config validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Base URL, pages and extract mode
  - Target directory and log file accessibility`,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = ".imgmirror.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("To overwrite, first remove the existing file:")
		fmt.Printf("  rm %s\n", configPath)
		return fmt.Errorf("configuration file already exists: %s", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	ui.PrintInfo(os.Stdout, "Configuration file created", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Edit the base URL and pages for your site")
	fmt.Println("2. Run 'imgmirror config validate' to check the configuration")
	fmt.Println("3. Start mirroring with 'imgmirror mirror'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	fmt.Print(string(data))

	fmt.Println("\nConfiguration sources (in order of priority):")
	fmt.Println("1. Command line flags")
	fmt.Println("2. Environment variables (IMGMIRROR_*)")
	if configFile != "" {
		fmt.Printf("3. Configuration file: %s\n", configFile)
	} else {
		fmt.Println("3. Configuration file: (first of .imgmirror.yaml, .imgmirror.yml, ~/.config/imgmirror/config.yaml, ~/.imgmirror.yaml)")
	}
	fmt.Println("4. Default values")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		ui.PrintInfo(os.Stdout, "Validating configuration", configFile)
	}

	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return err
	}

	var problems []string

	if info, err := os.Stat(cfg.Output.TargetDirectory); err == nil && !info.IsDir() {
		problems = append(problems, fmt.Sprintf("target directory %s is not a directory", cfg.Output.TargetDirectory))
	}

	if cfg.Logging.File != "" {
		dir := filepath.Dir(cfg.Logging.File)
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			problems = append(problems, fmt.Sprintf("log file directory %s is not a directory", dir))
		}
	}

	if len(problems) > 0 {
		fmt.Println("Configuration has errors:")
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		return fmt.Errorf("configuration is invalid")
	}

	fmt.Println("Configuration is valid")

	fmt.Println("\nConfiguration summary:")
	fmt.Printf("  Base URL: %s\n", cfg.Site.BaseURL)
	fmt.Printf("  Pages: %d\n", len(cfg.Site.Pages))
	fmt.Printf("  Target directory: %s\n", cfg.Output.TargetDirectory)
	fmt.Printf("  Timeout: %s\n", cfg.HTTP.Timeout)
	fmt.Printf("  Extract mode: %s\n", cfg.Extract.Mode)
	fmt.Printf("  Log level: %s\n", cfg.Logging.Level)
	return nil
}
