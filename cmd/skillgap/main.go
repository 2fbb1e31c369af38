// Package main provides the entry point for the skill-gap analyzer CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "skillgap"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "Skill gap analyzer and learning roadmap generator",
		Long:  "skillgap scores a candidate's skills against a target role's requirements and turns the missing skills into a prioritized, week-by-week learning roadmap.",
	}
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is skillgap.yaml in the current directory)")
	rootCmd.PersistentFlags().Float64("weekly-study-hours", 10, "study hours one roadmap week absorbs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print formatted analysis summaries")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug logging")

	_ = viper.BindPFlag("weekly-study-hours", rootCmd.PersistentFlags().Lookup("weekly-study-hours"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	viper.SetEnvPrefix("SKILLGAP")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; every setting has a flag default.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}
}
