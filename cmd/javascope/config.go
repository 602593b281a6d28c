package main

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

const (
	configBaseName = "javascope"
	envPrefix      = "JAVASCOPE"

	// languageKey selects a grammar explicitly; empty means detect
	// from the file extension.
	languageKey = "language"

	// formatKey selects the output encoder.
	formatKey = "format"

	// scopeKindsKey overrides the grammar's built-in table of node
	// kinds that count as scopes.
	scopeKindsKey = "scope_kinds"

	defaultFormat = "text"
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(languageKey, "")
	viper.SetDefault(formatKey, defaultFormat)
	viper.SetDefault(scopeKindsKey, []string{})

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}
	}
}
