package viper

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Viper struct holds the configuration for the Viper client
type Viper struct {
	configName string
	configType string
	configPath string // absolute path of the folder holding the configuration file
}

// NewViper creates the viper configuration for the given file location.
func NewViper(configName, configType, configPath string) *Viper {
	return &Viper{
		configName: configName,
		configType: configType,
		configPath: strings.TrimSuffix(configPath, "/"),
	}
}

// InitialiseViper initialises the viper client
func (v *Viper) InitialiseViper() error {
	viper.SetConfigName(v.configName) // Name of configuration file
	viper.SetConfigType(v.configType) // Configuration file type
	viper.AddConfigPath(v.configPath) // Look for configuration file in the given directory

	// Enable Viper to read environment variables
	viper.AutomaticEnv()

	// Attempt to read configuration file
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading configuration file: %s", err)
	}

	return nil
}

// UnmarshalConfig unmarshals the entire Viper configuration into the provided struct reference.
// It helps you avoid calling viper.GetString / viper.GetInt repeatedly by binding
// configuration values directly into a typed struct.
func UnmarshalConfig[T any](target *T) error {
	if target == nil {
		return fmt.Errorf("target struct cannot be nil")
	}

	if err := viper.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to unmarshal viper config: %w", err)
	}

	return nil
}
