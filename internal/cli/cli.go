package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/nhl-streams/internal/config"
	"github.com/pfrederiksen/nhl-streams/internal/gamedate"
	"github.com/pfrederiksen/nhl-streams/internal/logger"
	"github.com/pfrederiksen/nhl-streams/internal/selector"
	"github.com/pfrederiksen/nhl-streams/internal/statsapi"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDate     string
	flagHost     string
	flagAPIURL   string
	flagFixtures string
	flagTimeout  time.Duration
	flagFormat   string
	flagEnvFile  string
	flagPreview  bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nhl-streams",
		Short: "Pick an NHL game and feed, then print its playback URL",
		Long: `An interactive tool that lists the NHL games for a day, lets you pick a game
and one of its NHL.tv feeds, and prints the playback URL for that feed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPick,
	}

	// Define flags
	cmd.Flags().StringVar(&flagDate, "date", "", "Date to list games for, e.g. 2019-10-05 (default today)")
	cmd.Flags().StringVar(&flagHost, "host", "", "Stream host used in the playback URL (env: "+config.EnvStreamHost+")")
	cmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Stats API base URL (env: "+config.EnvAPIBaseURL+")")
	cmd.Flags().StringVar(&flagFixtures, "fixtures", "", "Read schedule.json and content_<gamePk>.json from this directory instead of the API")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout for stats API requests (env: "+config.EnvTimeout+")")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagEnvFile, "env-file", config.DefaultEnvFile, "Load environment variables from this file if it exists")
	cmd.Flags().BoolVar(&flagPreview, "preview", false, "Show the game preview after picking a game")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runPick is the main command logic
func runPick(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	date, err := gamedate.Resolve(flagDate, time.Now())
	if err != nil {
		return fmt.Errorf("resolving date: %w", err)
	}

	var client selector.StatsClient
	if flagFixtures != "" {
		client = statsapi.NewFileClient(flagFixtures)
	} else {
		client = statsapi.NewClient(cfg.APIBaseURL, cfg.Timeout)
	}

	logger.Debug("Starting pick", logger.Fields{
		"date":        gamedate.Format(date),
		"api_url":     cfg.APIBaseURL,
		"stream_host": cfg.StreamHost,
		"fixtures":    flagFixtures,
	})

	// JSON mode keeps stdout for the result alone
	menuOut := cmd.OutOrStdout()
	if format == FormatJSON {
		menuOut = cmd.ErrOrStderr()
	}

	sel := selector.New(client, cmd.InOrStdin(), menuOut, selector.Options{
		StreamHost:  cfg.StreamHost,
		Location:    time.Local,
		ShowPreview: flagPreview,
	})

	result, err := sel.Run(cmd.Context(), date)

	if flagVerbose {
		logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadConfig merges defaults, the env file, the environment and flags
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagHost != "" {
		cfg.StreamHost = flagHost
	}
	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagTimeout != 0 {
		cfg.Timeout = flagTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// run executes the root command with explicit arguments and streams and
// returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

// Execute runs the CLI against the process arguments and standard streams
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
