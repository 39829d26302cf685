package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/nhl-streams/internal/statsapi"
)

const fixtureSchedule = `{"dates": [{"date": "2019-10-05", "games": [
  {"gamePk": 2019020017, "gameDate": "2019-10-05T23:00:00Z",
   "teams": {"away": {"team": {"id": 6, "name": "Boston Bruins"}}, "home": {"team": {"id": 29, "name": "Columbus Blue Jackets"}}}},
  {"gamePk": 2019020018, "gameDate": "2019-10-06T02:00:00Z",
   "teams": {"away": {"team": {"id": 22, "name": "Edmonton Oilers"}}, "home": {"team": {"id": 23, "name": "Vancouver Canucks"}}}}
]}]}`

const fixtureContent = `{"media": {"epg": [{"title": "NHLTV", "items": [
  {"mediaFeedType": "HOME", "mediaPlaybackId": "68601503", "callLetters": "FS-O"},
  {"mediaFeedType": "AWAY", "mediaPlaybackId": "68601603", "callLetters": "NESN"}
]}]}}`

// fixtureDir writes a schedule plus content for the first game only
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		statsapi.ScheduleFile:            fixtureSchedule,
		statsapi.ContentFile(2019020017): fixtureContent,
		statsapi.ContentFile(2019020018): `{"media": {"epg": [{"title": "Audio"}]}}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}
	return dir
}

func execute(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"--env-file", ""}, args...)
	code := run(context.Background(), args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_TextOutput(t *testing.T) {
	dir := fixtureDir(t)

	code, stdout, stderr := execute(t, "1\n2\n", "--fixtures", dir, "--date", "2019-10-05", "--host", "http://streams.test")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}

	wantURL := "http://streams.test/getM3U8.php?league=nhl&date=2019-10-05&id=68601603&cdn=akc"
	if !strings.HasSuffix(stdout, "\n"+wantURL+"\n") {
		t.Errorf("stdout should end with URL %q, got:\n%s", wantURL, stdout)
	}
	for _, want := range []string{
		"Pick a game for 2019-10-05...",
		"Boston Bruins @ Columbus Blue Jackets",
		"Pick a stream...",
		"1) HOME (FS-O)",
		"2) AWAY (NESN)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
}

func TestRun_JSONOutput(t *testing.T) {
	dir := fixtureDir(t)

	code, stdout, stderr := execute(t, "1\n1\n", "--fixtures", dir, "--date", "2019-10-05", "--host", "http://streams.test", "--format", "json")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}

	var result OutputResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("stdout is not a single JSON document: %v\n%s", err, stdout)
	}
	if result.Date != "2019-10-05" || result.GamePk != 2019020017 || result.PlaybackID != "68601503" {
		t.Errorf("unexpected result: %+v", result)
	}
	if result.URL != "http://streams.test/getM3U8.php?league=nhl&date=2019-10-05&id=68601503&cdn=akc" {
		t.Errorf("URL = %q", result.URL)
	}
	if strings.Contains(stdout, `\u0026`) {
		t.Errorf("URL ampersands should not be escaped: %s", stdout)
	}
	if !strings.Contains(stderr, "Pick a game for 2019-10-05...") {
		t.Errorf("menus should go to stderr in json mode, stderr:\n%s", stderr)
	}
}

func TestRun_NoStreamsExitsZeroSilently(t *testing.T) {
	dir := fixtureDir(t)

	code, stdout, stderr := execute(t, "2\n", "--fixtures", dir, "--date", "2019-10-05")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if strings.Contains(stdout, "Pick a stream") || strings.Contains(stdout, "getM3U8.php") {
		t.Errorf("expected no stream menu and no URL, got:\n%s", stdout)
	}
	if stderr != "" {
		t.Errorf("expected empty stderr, got %q", stderr)
	}
}

func TestRun_ScheduleFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	input := strings.NewReader("1\n")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--env-file", "", "--api-url", server.URL, "--date", "2019-10-05"}, input, &stdout, &stderr)

	if code != ExitError {
		t.Fatalf("exit code = %d, want %d", code, ExitError)
	}
	if !strings.HasPrefix(stderr.String(), "Error: fetching schedule") {
		t.Errorf("stderr = %q, want fetching schedule error", stderr.String())
	}
	if strings.Contains(stdout.String(), ">>>") {
		t.Errorf("prompted despite failure:\n%s", stdout.String())
	}
	if input.Len() != len("1\n") {
		t.Errorf("stdin was read despite failure")
	}
}

func TestRun_LiveAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/schedule":
			w.Write([]byte(fixtureSchedule)) // nolint:errcheck
		case "/game/2019020017/content":
			w.Write([]byte(fixtureContent)) // nolint:errcheck
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	code, stdout, stderr := execute(t, "1\n1\n", "--api-url", server.URL, "--date", "Oct 5 2019", "--host", "http://h")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, stderr)
	}
	if !strings.Contains(stdout, "http://h/getM3U8.php?league=nhl&date=2019-10-05&id=68601503&cdn=akc") {
		t.Errorf("stdout missing URL:\n%s", stdout)
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad format", args: []string{"--format", "xml"}, wantErr: "invalid format"},
		{name: "bad date", args: []string{"--date", "someday"}, wantErr: "resolving date"},
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "unknown flag"},
		{name: "positional arg", args: []string{"extra"}, wantErr: "unknown command"},
		{name: "negative timeout", args: []string{"--timeout", "-5s"}, wantErr: "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, "1\n", tt.args...)
			if code != ExitError {
				t.Fatalf("exit code = %d, want %d", code, ExitError)
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantErr)
			}
			if strings.Contains(stdout, ">>>") {
				t.Errorf("prompted despite invalid arguments")
			}
		})
	}
}

func TestRun_EnvFile(t *testing.T) {
	dir := fixtureDir(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("NHL_STREAM_HOST=http://from-env-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("NHL_STREAM_HOST", "")
	os.Unsetenv("NHL_STREAM_HOST") // nolint:errcheck

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--env-file", envFile, "--fixtures", dir, "--date", "2019-10-05"},
		strings.NewReader("1\n1\n"), &stdout, &stderr)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "http://from-env-file/getM3U8.php") {
		t.Errorf("env file host not used:\n%s", stdout.String())
	}
}
