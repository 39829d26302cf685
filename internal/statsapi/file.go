package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pfrederiksen/nhl-streams/internal/logger"
)

// ScheduleFile is the schedule fixture name inside a FileClient directory
const ScheduleFile = "schedule.json"

// ContentFile returns the content fixture name for a game
func ContentFile(gamePk int64) string {
	return fmt.Sprintf("content_%d.json", gamePk)
}

// FileClient reads stats API responses saved as JSON files.
// Dir holds schedule.json and one content_<gamePk>.json per game.
type FileClient struct {
	Dir string
}

// NewFileClient creates a FileClient rooted at dir
func NewFileClient(dir string) *FileClient {
	return &FileClient{Dir: dir}
}

// GetScheduleFor returns the entry for date from schedule.json
func (f *FileClient) GetScheduleFor(ctx context.Context, date time.Time) (*Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var resp scheduleResponse
	if err := f.readJSON(ScheduleFile, &resp); err != nil {
		return nil, err
	}
	return resp.forDate(date)
}

// GetGameContent returns content_<gamePk>.json
func (f *FileClient) GetGameContent(ctx context.Context, gamePk int64) (*GameContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var content GameContent
	if err := f.readJSON(ContentFile(gamePk), &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (f *FileClient) readJSON(name string, v interface{}) error {
	path := filepath.Join(f.Dir, name)
	logger.Debug("Reading fixture", logger.Fields{"path": path})

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading fixture: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing fixture %s: %w", name, err)
	}
	return nil
}
