package statsapi

import (
	"errors"
	"fmt"
	"time"

	"github.com/pfrederiksen/nhl-streams/internal/gamedate"
)

// NHLTVTitle is the EPG title that groups the playable NHL.tv feeds
const NHLTVTitle = "NHLTV"

// Schedule is one day's games in API order
type Schedule struct {
	Date  time.Time
	Games []Game
}

// Game is a single scheduled game
type Game struct {
	GamePk   int64     `json:"gamePk"`
	GameDate time.Time `json:"gameDate"`
	Teams    Teams     `json:"teams"`
}

// Teams holds both sides of a game
type Teams struct {
	Away TeamSlot `json:"away"`
	Home TeamSlot `json:"home"`
}

// TeamSlot wraps the team details for one side
type TeamSlot struct {
	Team Team `json:"team"`
}

// Team identifies a club
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AwayName returns the visiting team's display name
func (g *Game) AwayName() string {
	return g.Teams.Away.Team.Name
}

// HomeName returns the home team's display name
func (g *Game) HomeName() string {
	return g.Teams.Home.Team.Name
}

// GameContent is the media descriptor for one game
type GameContent struct {
	Media     Media     `json:"media"`
	Editorial Editorial `json:"editorial"`
}

// Media lists the electronic program guide entries
type Media struct {
	Epg []EpgEntry `json:"epg"`
}

// EpgEntry groups stream items under a broadcast title
type EpgEntry struct {
	Title string       `json:"title"`
	Items []StreamItem `json:"items,omitempty"`
}

// StreamItem is one playable feed
type StreamItem struct {
	MediaFeedType   string `json:"mediaFeedType"`
	MediaPlaybackID string `json:"mediaPlaybackId"`
	CallLetters     string `json:"callLetters,omitempty"`
}

// Label returns the feed type, followed by the broadcaster when known
func (s *StreamItem) Label() string {
	if s.CallLetters == "" {
		return s.MediaFeedType
	}
	return fmt.Sprintf("%s (%s)", s.MediaFeedType, s.CallLetters)
}

// Editorial carries the written coverage attached to a game
type Editorial struct {
	Preview EditorialSection `json:"preview"`
}

// EditorialSection is a list of articles
type EditorialSection struct {
	Items []Article `json:"items"`
}

// Article is a single editorial piece; Preview holds HTML
type Article struct {
	Headline string `json:"headline"`
	Subhead  string `json:"subhead"`
	Preview  string `json:"preview"`
}

// NHLTV returns the first EPG entry titled NHLTV, or nil if there is none
func (c *GameContent) NHLTV() *EpgEntry {
	for i := range c.Media.Epg {
		if c.Media.Epg[i].Title == NHLTVTitle {
			return &c.Media.Epg[i]
		}
	}
	return nil
}

// scheduleResponse is the wire shape of GET /schedule
type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// forDate picks the entry for date and converts it into a Schedule
func (r *scheduleResponse) forDate(date time.Time) (*Schedule, error) {
	want := gamedate.Format(date)
	for _, d := range r.Dates {
		if d.Date != want {
			continue
		}
		parsed, err := time.Parse(gamedate.ISOLayout, d.Date)
		if err != nil {
			return nil, fmt.Errorf("parsing schedule date %q: %w", d.Date, err)
		}
		if len(d.Games) == 0 {
			break
		}
		return &Schedule{Date: gamedate.Civil(parsed), Games: d.Games}, nil
	}
	return nil, &NoScheduleError{Date: want}
}

// APIError is the error body returned by the stats API
type APIError struct {
	StatusCode    int    `json:"-"`
	MessageNumber int    `json:"messageNumber"`
	Message       string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("stats API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("stats API returned status %d: %s", e.StatusCode, e.Message)
}

// ErrNoSchedule is matched by every NoScheduleError
var ErrNoSchedule = errors.New("no games scheduled")

// NoScheduleError reports a day without any games
type NoScheduleError struct {
	Date string
}

func (e *NoScheduleError) Error() string {
	return fmt.Sprintf("no games scheduled for %s", e.Date)
}

// Is lets errors.Is(err, ErrNoSchedule) match
func (e *NoScheduleError) Is(target error) bool {
	return target == ErrNoSchedule
}
