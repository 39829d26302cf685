// Package cli implements the command-line interface for nhl-streams.
//
// The cli package provides the Cobra root command. It layers configuration
// (defaults, .env, environment, flags), resolves the date to look up, picks the
// live stats API or a fixture directory as data source, runs the interactive
// selector and writes the chosen playback URL as text or JSON.
package cli
