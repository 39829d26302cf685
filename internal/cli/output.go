package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/nhl-streams/internal/gamedate"
	"github.com/pfrederiksen/nhl-streams/internal/selector"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult is the JSON shape of a completed pick
type OutputResult struct {
	Date        string    `json:"date"`
	GamePk      int64     `json:"game_pk"`
	Kickoff     time.Time `json:"kickoff"`
	Away        string    `json:"away"`
	Home        string    `json:"home"`
	FeedType    string    `json:"feed_type"`
	CallLetters string    `json:"call_letters,omitempty"`
	PlaybackID  string    `json:"playback_id"`
	URL         string    `json:"url"`
}

// NewOutputResult flattens a selector result
func NewOutputResult(r *selector.Result) *OutputResult {
	return &OutputResult{
		Date:        gamedate.Format(r.Date),
		GamePk:      r.Game.GamePk,
		Kickoff:     r.Game.GameDate,
		Away:        r.Game.AwayName(),
		Home:        r.Game.HomeName(),
		FeedType:    r.Stream.MediaFeedType,
		CallLetters: r.Stream.CallLetters,
		PlaybackID:  r.Stream.MediaPlaybackID,
		URL:         r.URL,
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *selector.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, NewOutputResult(result))
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the result as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(result)
}

// writeText prints the playback URL on its own line
func writeText(w io.Writer, result *selector.Result) error {
	_, err := fmt.Fprintf(w, "\n%s\n", result.URL)
	return err
}
