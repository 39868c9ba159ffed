// Package config loads and validates the card wallet configuration.
//
// Settings are read from a YAML file through viper, may be overridden by
// CARD_WALLET_* environment variables and fall back to defaults that keep
// the database and image directory relative to the working directory.
package config
