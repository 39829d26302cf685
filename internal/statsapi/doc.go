// Package statsapi fetches NHL schedules and game media content.
//
// Client talks to the public stats API (v1) over HTTP. FileClient serves the
// same wire format from JSON files on disk, which is used for offline runs and
// tests. Both satisfy the lookups the selector needs: a day's schedule and a
// game's content descriptor.
package statsapi
