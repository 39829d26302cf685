// Package gamedate handles the calendar dates and kickoff times shown by nhl-streams.
//
// Schedule dates are civil dates: they are represented as midnight UTC so that
// formatting them back to YYYY-MM-DD never shifts with the user's time zone.
// Kickoff times are real instants and are rendered in a caller-supplied location.
package gamedate
