// Package telemetry wraps github.com/yanun0323/logs with the small set
// of call sites this pipeline needs: a fatal-error log immediately
// before the run aborts on a malformed record, and informational lines
// (one trace line per ingested record and a run-complete summary).
package telemetry

import "github.com/yanun0323/logs"

// Info logs an informational line.
func Info(msg string) {
	logs.Info(msg)
}

// Infof logs a formatted informational line.
func Infof(format string, args ...any) {
	logs.Infof(format, args...)
}

// Fatal logs the error that is about to abort the run.
func Fatal(err error) {
	logs.Errorf("fatal: %s", err.Error())
}
