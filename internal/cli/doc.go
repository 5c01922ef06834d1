// Package cli provides command-line interface setup and configuration
// for the spellbee application. It handles flag parsing, command
// creation, configuration loading and validation using cobra, viper and
// validator, and sets up the structured logger.
package cli
