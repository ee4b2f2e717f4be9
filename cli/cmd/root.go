package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/francois-poidevin/flightsun/config"
	defaults "github.com/mcuadros/go-defaults"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "FS"
	defaultConfigFile = "~/.flightsun.toml"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flightsun",
	Short: "Flightsun tells which window seat gets the sunrise, the sunset or the night sky",
	Long: `Flightsun samples the great-circle route between two airports, follows the sun
	along the flight and recommends the left or right window seat.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	log     *logrus.Logger
	cfgFile string
	conf    = &config.Configuration{}
)

func init() {
	//log handling
	log = logrus.New()
	log.Formatter = new(logrus.TextFormatter)                     //default
	log.Formatter.(*logrus.TextFormatter).DisableColors = true    // remove colors
	log.Formatter.(*logrus.TextFormatter).DisableTimestamp = true // remove timestamp from test output
	log.Level = logrus.InfoLevel
	log.Out = os.Stdout

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+defaultConfigFile+" when present)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(startHttpCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	for k := range asEnvVariables(conf, "", false) {
		err := viper.BindEnv(strings.ToLower(strings.Replace(k, "_", ".", -1)), envPrefix+"_"+k)
		if err != nil {
			log.WithFields(logrus.Fields{
				"var": envPrefix + "_" + k,
			}).Error("Unable to bind environment variable")
		}
	}

	defaults.SetDefaults(conf)

	file, explicit := cfgFile, cfgFile != ""
	if !explicit {
		file = defaultConfigFile
	}
	expanded, err := homedir.Expand(file)
	if err != nil {
		log.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Unable to expand config path")
	}

	switch _, statErr := os.Stat(expanded); {
	case statErr == nil:
		log.WithFields(logrus.Fields{
			"File": expanded,
		}).Info("Reading configuration file")

		viper.SetConfigFile(expanded)
		viper.SetConfigType("toml")
		if err := viper.ReadInConfig(); err != nil {
			log.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Unable to read config")
		}
	case explicit:
		// If the config file doesn't exists, let's exit
		log.WithFields(logrus.Fields{
			"err": statErr,
		}).Fatal("File doesn't exists")
	}

	if err := viper.Unmarshal(conf); err != nil {
		log.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Unable to parse config")
	}

	configureLogger(log, conf.Log.Level, conf.Log.Format)
}

func configureLogger(l *logrus.Logger, level, format string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	} else {
		l.WithFields(logrus.Fields{
			"level": level,
		}).Warn("Unknown log level, keeping " + l.GetLevel().String())
	}

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}
