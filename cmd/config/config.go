package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-advent/pkg/models"
)

var (
	cfgFile string
	Verbose bool
)

// AddGlobalFlags registers the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/aoc/config.yaml)")
	cmd.PersistentFlags().String("inputs-dir", "", "directory whose dayNN.txt files override the bundled inputs")
	cmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable debug logging")
	cobra.CheckErr(viper.BindPFlag("inputs_dir", cmd.PersistentFlags().Lookup("inputs-dir")))
}

// InitSettings loads settings into the global viper instance.
func InitSettings() (models.Settings, error) {
	return Load(viper.GetViper(), cfgFile)
}

// Load reads the config file (file, or the default location when empty),
// applies AOC_ environment overrides and returns validated settings.
func Load(v *viper.Viper, file string) (models.Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return models.Settings{}, fmt.Errorf("resolve home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".config", "aoc"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := setDefaults(v); err != nil {
		return models.Settings{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return models.Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return models.Settings{}, fmt.Errorf("decode config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func setDefaults(v *viper.Viper) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	d := models.DefaultSettings()

	v.SetDefault("inputs_dir", d.InputsDir)
	v.SetDefault("data_dir", filepath.Join(home, ".local", "share", "aoc"))
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("record", d.Record)
	v.SetDefault("calories.top_n", d.Calories.TopN)
	v.SetDefault("tuning.packet_window", d.Tuning.PacketWindow)
	v.SetDefault("tuning.message_window", d.Tuning.MessageWindow)
	v.SetDefault("nospace.capacity", d.NoSpace.Capacity)
	v.SetDefault("nospace.required_free", d.NoSpace.RequiredFree)
	v.SetDefault("nospace.small_limit", d.NoSpace.SmallLimit)
	v.SetDefault("rope.knots", d.Rope.Knots)
	return nil
}

// NewLogger builds the stderr logger. verbose forces debug level.
func NewLogger(level string, verbose bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger, nil
}
