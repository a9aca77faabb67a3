// Package config manages user-level settings stored at ~/.findx/config.yaml.
// Settings are read through Viper, so every key can also be supplied as a
// FINDX_-prefixed environment variable. The file is checked against an
// embedded JSON schema by Validate.
package config
