package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/pkg/config"
	"github.com/kamal-hamza/sitegen/pkg/ui"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective sitegen configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := appConfig.Marshal()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if configPath == "" {
			fmt.Fprintln(out, ui.FormatInfo("No config directory available (using defaults)"))
		} else if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Fprintln(out, ui.FormatInfo("No config file at "+configPath+" (using defaults)"))
		} else {
			fmt.Fprintln(out, ui.FormatInfo("Config: "+configPath))
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath == "" {
			return fmt.Errorf("no user config directory found; pass --config <path>")
		}
		if _, err := os.Stat(configPath); err == nil && !configInitForce {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}

		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatSuccess("Config written to "+configPath))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}
