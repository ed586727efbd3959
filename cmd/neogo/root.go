package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/neogo"
	"github.com/hupe1980/neogo/ingest"
)

var rootCmd = &cobra.Command{
	Use:   "neogo",
	Short: "Explore near-Earth objects and their close approaches",
	Long: "neogo links the NASA near-Earth object and close-approach data sets " +
		"and answers queries that filter close approaches by date, distance, " +
		"velocity, diameter, and hazard flag.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .neogo.yaml)")
	rootCmd.PersistentFlags().String("neofile", "data/neos.csv", "path to the NEO data set (CSV, optionally .gz)")
	rootCmd.PersistentFlags().String("cadfile", "data/cad.json", "path to the close-approach data set (JSON, optionally .gz)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("neofile", rootCmd.PersistentFlags().Lookup("neofile"))
	_ = viper.BindPFlag("cadfile", rootCmd.PersistentFlags().Lookup("cadfile"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".neogo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NEOGO")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// loadStore reads both data sets and builds the linked store.
func loadStore(cmd *cobra.Command) (*neogo.Store, error) {
	bodies, approaches, err := ingest.Load(context.Background(), viper.GetString("neofile"), viper.GetString("cadfile"))
	if err != nil {
		return nil, err
	}

	var opts []neogo.Option
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, neogo.WithLogLevel(slog.LevelDebug))
	}
	return neogo.New(bodies, approaches, opts...)
}
