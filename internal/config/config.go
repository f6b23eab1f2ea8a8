/*
File   : aoi/internal/config/config.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package config loads the server's runtime configuration via viper,
// layering defaults, an optional config file, and AOI_-prefixed
// environment variables, the way dphaener-conduit's server config does.
package config

import "github.com/spf13/viper"

// ServerConfig holds the settings internal/httpserver needs to boot.
type ServerConfig struct {
	Port         int
	NumericLimit int
}

// Load reads ServerConfig from (in increasing priority) built-in
// defaults, an optional ./aoi.yaml / ./aoi.json config file, and
// AOI_PORT / AOI_NUMERIC_LIMIT environment variables.
func Load() (*ServerConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("AOI")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("numeric_limit", 148)

	v.SetConfigName("aoi")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	return &ServerConfig{
		Port:         v.GetInt("port"),
		NumericLimit: v.GetInt("numeric_limit"),
	}, nil
}
