// Package config holds the runtime settings for nhl-streams.
//
// Settings are layered: built-in defaults, then an optional .env file, then
// process environment variables. Command-line flags are applied last by the
// cli package.
package config
