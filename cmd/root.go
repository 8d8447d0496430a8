package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFileName = "tdxplot_config"

var (
	cfgFile string
	debug   bool
	opts    Options
)

var rootCmd = &cobra.Command{
	Use:               "tdxplot [report.csv]",
	Short:             "Chart ticket counts from a TDX ticket report",
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tdxplot/tdxplot_config.json)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("nographics", false, "print query results as plain text instead of the results viewer")

	addFilterFlags(rootCmd)

	rootCmd.AddCommand(
		newQueryCmd("perweek", "Show tickets per week"),
		newQueryCmd("perbuilding", "Show tickets per building"),
		newQueryCmd("perroom", "Show tickets per room in a specified building"),
		newQueryCmd("perrequestor", "Show ticket counts by requestor"),
		newQueryCmd("tickets", "List tickets matching the given filters"),
		presetCmd,
	)

	cobra.OnInitialize(initConfig)
}

func preRun(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home directory: %w", err)
	}

	if err := setLogger(filepath.Join(home, ".tdxplot", "tdxplot.log")); err != nil {
		return fmt.Errorf("setting logger: %w", err)
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.Unmarshal(&opts); err != nil {
		return fmt.Errorf("unmarshaling options: %w", err)
	}

	return nil
}

// initConfig reads in the config file if one exists; a missing file is
// fine, defaults apply.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".tdxplot"))
		viper.SetConfigType("json")
		viper.SetConfigName(configFileName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Println("Error reading config file:", err)
			os.Exit(1)
		}
	}
}
