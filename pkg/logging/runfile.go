package logging

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	runLogPrefix     = "sortnorris_"
	runLogSuffix     = ".log"
	runLogTimeFormat = "20060102_150405"
)

// RunLogPath returns the log file path for a run started at t, named
// sortnorris_YYYYMMDD_HHMMSS.log. If dir is empty the name is relative
// to the current directory.
func RunLogPath(dir string, t time.Time) string {
	name := runLogPrefix + t.Format(runLogTimeFormat) + runLogSuffix
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// IsRunLogName reports whether name looks like one of our run log
// files. The organizer uses this to leave its own logs in place.
func IsRunLogName(name string) bool {
	return strings.HasPrefix(name, runLogPrefix) && strings.HasSuffix(name, runLogSuffix)
}
