package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Options controls where and how verbosely the process logs.
type Options struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup initializes Logrus to write to stdout and a rotating file.
// An empty File keeps logging on stdout only.
func Setup(opts Options) error {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		// Lumberjack for file rotation
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10), // megabytes
			MaxBackups: orDefault(opts.MaxBackups, 7),
			MaxAge:     orDefault(opts.MaxAgeDays, 7), // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotator)
	}

	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(level)
	return nil
}

// Writer returns the writer Logrus is currently logging to, so request
// logs end up in the same place.
func Writer() io.Writer {
	return logrus.StandardLogger().Out
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
