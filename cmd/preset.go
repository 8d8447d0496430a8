package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Presets are saved option bundles: the effective flag and config values
// written out as a config file that later runs load with --config.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Save or inspect query presets",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save the current options as a named preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}

		dir := filepath.Join(home, ".tdxplot")
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("creating preset directory: %w", err)
		}

		path := filepath.Join(dir, args[0]+".json")
		if err := viper.WriteConfigAs(path); err != nil {
			return fmt.Errorf("writing preset file: %w", err)
		}

		fmt.Println("Preset saved - use it with --config", path)
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective options",
	RunE: func(cmd *cobra.Command, args []string) error {
		for key, val := range viper.AllSettings() {
			fmt.Printf("%s: %v\n", key, val)
		}
		return nil
	},
}

func init() {
	presetCmd.AddCommand(presetSaveCmd, presetShowCmd)
}
