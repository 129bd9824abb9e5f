package cli

import (
	"fmt"
	"strings"

	"github.com/deencli/deen/internal/config"
	"github.com/deencli/deen/internal/display"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent configuration",
		Long:  "View and edit the config file. Values set here apply to every command\nand are overridden by the matching CLI flags.",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE:  runConfigShow,
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long:  "Set a config value. Valid keys: " + strings.Join(config.ValidKeys, ", "),
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a single config value",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the config file",
		RunE:  runConfigReset,
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE:  runConfigPath,
	}

	cmd.AddCommand(show, set, get, reset, path)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	if FlagJSON {
		return printJSON(cfg)
	}

	for _, key := range config.ValidKeys {
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			value = display.Dim("(not set)")
		}
		fmt.Fprintf(outWriter, "  %-12s %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	saved, _ := cfg.Get(key)
	fmt.Fprintf(outWriter, "%s = %s\n", key, saved)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	if cfg == nil {
		cfg = &config.Config{}
	}

	value, err := cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(outWriter, value)
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if err := config.Reset(); err != nil {
		return err
	}
	fmt.Fprintln(outWriter, "Configuration reset.")
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Fprintln(outWriter, path)
	return nil
}
