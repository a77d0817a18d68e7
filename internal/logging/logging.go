// Package logging holds the logger shared by the resale packages.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process wide logger. It logs at info level on stderr until
// Init is called.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	return l
}

// Init configures Logger.
//
// level is one of debug, info, warn or error (info when unknown). format
// "json" produces one JSON object per line with the caller file and line,
// anything else the human readable text format.
func Init(level, format string, out io.Writer) {
	if out != nil {
		Logger.Out = out
	}

	switch strings.ToLower(format) {
	case "json":
		Logger.SetReportCaller(true)
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05Z07:00",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				filename := filepath.Base(f.File)
				return "", filename + ":" + strconv.Itoa(f.Line)
			},
		})
	default:
		Logger.SetReportCaller(false)
		Logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
		})
	}

	Logger.SetLevel(ParseLevel(level))
}

// ParseLevel returns the logrus level named s, info by default.
func ParseLevel(s string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
