package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pfrederiksen/nhl-streams/internal/cli"
)

func main() {
	code := cli.Execute(context.Background())

	if shouldPause(runtime.GOOS, code) {
		pause(os.Stdin, os.Stdout)
	}

	os.Exit(code)
}

// shouldPause reports whether the console should stay open. Failed runs exit
// straight away.
func shouldPause(goos string, code int) bool {
	return goos == "windows" && code == cli.ExitSuccess
}

// pause keeps a double-clicked console window open until Enter is pressed
func pause(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress enter or close window to exit...")
	in.Read(make([]byte, 1)) // nolint:errcheck
}
