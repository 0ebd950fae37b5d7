package cmd

import (
	"fmt"
	"os"

	"github.com/wrike/promabbix/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cliName = "promabbix"

var (
	// Version represents the current version of the tool
	Version = "v0.0.0-dev"
	// GitCommit represents the latest commit when building this tool
	GitCommit = "HEAD"
	// Date represents the build timestamp
	Date = "now"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "Generate Zabbix templates from Prometheus alerting rules",
	Long: `A CLI tool for converting unified Prometheus/Zabbix configurations
into Zabbix template export documents.

A unified configuration carries Prometheus recording and alerting rules
together with Zabbix template metadata and optional wiki documentation
references. Configurations are validated against a schema and checked
for alert/wiki consistency before any template is generated.`,
	Version: fmt.Sprintf("v%s (%s) Built at %s", Version, GitCommit, Date),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		initConfig()
		logging.Configure(cmd)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Setup log-level global flag
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "Set the logging level (debug, info, warn, error, fatal, panic)")

	// Viper config
	viper.SetEnvPrefix("PROMABBIX")
	viper.AutomaticEnv()
	err := viper.BindEnv("log_level", "PROMABBIX_LOG_LEVEL")
	if err != nil {
		logging.Log.Error(err)
		return
	}

	// Bind the log-level flag to Viper (this also makes it available via viper.GetString)
	err = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	if err != nil {
		logging.Log.Error(err)
		return
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	// Search config in home directory with name ".promabbix" (without extension).
	viper.AddConfigPath(home)
	viper.SetConfigName("." + cliName)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		_, err = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		if err != nil {
			logging.Log.Error(err)
			return
		}
	}
}
