// Package selector drives the interactive game and stream picker.
//
// A run fetches the schedule for one day, lets the user choose a game, fetches
// that game's media content, lets the user choose an NHL.tv feed and builds the
// playback URL for it. Every step runs once, in order; the first error ends
// the run.
package selector
