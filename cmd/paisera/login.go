package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paisera/paisera/internal/cli"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a session token for API access",
		Long: `Save a session token to the config file.

Obtain a token from the paisera web or mobile app under
Settings > Developer access. The token can also be supplied per
invocation via the PAISERA_API_TOKEN environment variable.`,
		RunE: runLogin,
	}

	cmd.Flags().String("token", "", "Session token (prompted for if omitted)")

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	token, _ := cmd.Flags().GetString("token")
	ctx := cmd.Context()

	if token == "" {
		prompter := cli.NewPrompter(os.Stdin, os.Stdout)
		line, err := prompter.Confirm(ctx, "Paste a token now?")
		if err != nil {
			return err
		}
		if !line {
			fmt.Println(cli.FormatInfo("Canceled."))
			return nil
		}

		fmt.Print(cli.FormatPrompt("Token"))
		reader := cli.NewNonBlockingReader(os.Stdin)
		token, err = reader.ReadLine(ctx)
		if err != nil {
			return err
		}
	}

	if token == "" {
		return fmt.Errorf("empty token")
	}

	viper.Set("api.token", token)

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir := filepath.Join(home, ".config", "paisera")
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = filepath.Join(dir, "config.yaml")
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Token saved to " + configPath))
	return nil
}
