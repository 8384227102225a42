package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Config keys that may be persisted to the config file.
var persistableKeys = map[string]bool{
	"api":        true,
	"api-key":    true,
	"api-secret": true,
	"output":     true,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and modify the configuration stored in ~/.convertkit/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetCredentialsCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Show the effective configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]string{
				"api":        viper.GetString("api"),
				"api-key":    maskSecret(viper.GetString("api-key")),
				"api-secret": maskSecret(viper.GetString("api-secret")),
				"output":     viper.GetString("output"),
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(settings)
			case OutputFormatYAML:
				return renderYAML(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api", settings["api"])
				_ = table.Append("api-key", settings["api-key"])
				_ = table.Append("api-secret", settings["api-secret"])
				_ = table.Append("output", settings["output"])

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !persistableKeys[key] {
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
			}

			viper.Set(key, args[1])

			err := saveConfig()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !persistableKeys[key] {
				return fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			err := saveConfig()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(os.Stdout, "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigSetCredentialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-credentials",
		Short: "Store API credentials",
		Long:  "Prompt for the API key and secret without echoing, and persist them",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = os.Stdout.WriteString("API Key: ")

			keyBytes, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read API key: %w", err)
			}

			_, _ = os.Stdout.WriteString("\n") // Add newline after password input
			_, _ = os.Stdout.WriteString("API Secret (optional): ")

			secretBytes, err := term.ReadPassword(syscall.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read API secret: %w", err)
			}

			_, _ = os.Stdout.WriteString("\n")

			viper.Set("api-key", string(keyBytes))
			viper.Set("api-secret", string(secretBytes))

			err = saveConfig()
			if err != nil {
				return err
			}

			_, _ = os.Stdout.WriteString("Credentials saved\n")

			return nil
		},
	}
}

// saveConfig writes the persistable settings back to the config file.
func saveConfig() error {
	err := viper.WriteConfig()
	if err == nil {
		return nil
	}

	// No config file yet: create one in the default location.
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".convertkit", "config.yml")

	err = viper.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func maskSecret(value string) string {
	if value == "" {
		return NotAvailable
	}

	return Masked
}
