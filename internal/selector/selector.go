package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/nhl-streams/internal/gamedate"
	"github.com/pfrederiksen/nhl-streams/internal/logger"
	"github.com/pfrederiksen/nhl-streams/internal/prompt"
	"github.com/pfrederiksen/nhl-streams/internal/statsapi"
)

// Banner is printed when a run starts
const Banner = `
 _  _ _  _ _        ___ _
| \| | || | |   ___/ __| |_ _ _ ___ __ _ _ __  ___
| .' | __ | |__|___\__ \  _| '_/ -_) _' | '  \(_-<
|_|\_|_||_|____|   |___/\__|_| \___\__,_|_|_|_/__/`

var (
	ErrInvalidGameChoice   = errors.New("invalid game choice")
	ErrInvalidStreamChoice = errors.New("invalid stream choice")
)

// StatsClient is the stats API surface a run needs
type StatsClient interface {
	GetScheduleFor(ctx context.Context, date time.Time) (*statsapi.Schedule, error)
	GetGameContent(ctx context.Context, gamePk int64) (*statsapi.GameContent, error)
}

// Options tune a Selector
type Options struct {
	// StreamHost prefixes the playback URL
	StreamHost string

	// Location renders kickoff times; nil means time.Local
	Location *time.Location

	// ShowPreview prints the game's editorial preview after it is chosen
	ShowPreview bool
}

// Result is the outcome of a completed pick
type Result struct {
	Date   time.Time
	Game   statsapi.Game
	Stream statsapi.StreamItem
	URL    string
}

// Selector runs the pick flow against one client and one terminal
type Selector struct {
	client StatsClient
	prompt *prompt.Prompter
	out    io.Writer
	opts   Options
}

// New creates a Selector reading answers from in and writing menus to out
func New(client StatsClient, in io.Reader, out io.Writer, opts Options) *Selector {
	return &Selector{
		client: client,
		prompt: prompt.New(in, out),
		out:    out,
		opts:   opts,
	}
}

// Run performs one pick for date. It returns a nil Result and nil error when
// the chosen game has no NHL.tv feeds.
func (s *Selector) Run(ctx context.Context, date time.Time) (*Result, error) {
	fmt.Fprintln(s.out, Banner)

	schedule, err := s.client.GetScheduleFor(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	logger.Debug("Fetched schedule", logger.Fields{
		"date":  gamedate.Format(schedule.Date),
		"games": len(schedule.Games),
	})

	s.printGameMenu(gamedate.Format(date), schedule.Games)

	idx, err := prompt.Choose(s.prompt, len(schedule.Games))
	if err != nil {
		return nil, fmt.Errorf("reading game choice: %w", err)
	}
	if idx < 0 || idx >= len(schedule.Games) {
		return nil, ErrInvalidGameChoice
	}
	game := schedule.Games[idx]

	content, err := s.client.GetGameContent(ctx, game.GamePk)
	if err != nil {
		return nil, fmt.Errorf("fetching game content: %w", err)
	}

	if s.opts.ShowPreview {
		s.printPreview(content)
	}

	nhltv := content.NHLTV()
	if nhltv == nil || len(nhltv.Items) == 0 {
		// TODO: tell the user no NHL.tv feeds exist once product signs off on the wording
		logger.Debug("No NHLTV feeds for game", logger.Fields{"game_pk": game.GamePk})
		return nil, nil
	}

	s.printStreamMenu(nhltv.Items)

	idx, err = prompt.Choose(s.prompt, len(nhltv.Items))
	if err != nil {
		return nil, fmt.Errorf("reading stream choice: %w", err)
	}
	if idx < 0 || idx >= len(nhltv.Items) {
		return nil, ErrInvalidStreamChoice
	}
	stream := nhltv.Items[idx]

	return &Result{
		Date:   schedule.Date,
		Game:   game,
		Stream: stream,
		URL:    PlaybackURL(s.opts.StreamHost, schedule.Date, stream.MediaPlaybackID),
	}, nil
}

// PlaybackURL builds the getM3U8 URL for a feed on date
func PlaybackURL(host string, date time.Time, playbackID string) string {
	return fmt.Sprintf("%s/getM3U8.php?league=nhl&date=%s&id=%s&cdn=akc",
		host, gamedate.Format(date), playbackID)
}

func (s *Selector) printGameMenu(date string, games []statsapi.Game) {
	fmt.Fprintf(s.out, "\nPick a game for %s...\n\n", date)
	for i, game := range games {
		fmt.Fprintf(s.out, "%d) %s - %s @ %s\n",
			i+1,
			gamedate.Kickoff(game.GameDate, s.opts.Location),
			game.AwayName(),
			game.HomeName())
	}
}

func (s *Selector) printStreamMenu(items []statsapi.StreamItem) {
	fmt.Fprint(s.out, "\nPick a stream...\n\n")
	for i, item := range items {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, item.Label())
	}
}

// printPreview is best effort: a broken article body is logged, not fatal
func (s *Selector) printPreview(content *statsapi.GameContent) {
	article := content.Preview()
	if article == nil {
		return
	}

	text, err := statsapi.PreviewText(article.Preview)
	if err != nil {
		logger.Warn("Could not render game preview", logger.Fields{"headline": article.Headline})
		return
	}

	fmt.Fprintf(s.out, "\n%s\n", article.Headline)
	if article.Subhead != "" {
		fmt.Fprintln(s.out, article.Subhead)
	}
	if text != "" {
		fmt.Fprintf(s.out, "\n%s\n", text)
	}
}
