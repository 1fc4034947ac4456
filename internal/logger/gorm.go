package logger

import (
	"context"
	"errors"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SlowQueryThreshold is the duration above which a statement is logged as a warning.
const SlowQueryThreshold = 200 * time.Millisecond

type gormLogger struct {
	log   *logrus.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

// GormLogger returns a GORM logger backed by the standard Logrus logger.
// SQL statements are logged at debug level; record-not-found is never
// reported as an error since lookups treat it as a normal outcome.
func GormLogger(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{log: logrus.StandardLogger(), level: level, slow: SlowQueryThreshold}
}

// GormLevel maps a Logrus level name onto the closest GORM log level.
func GormLevel(name string) gormlogger.LogLevel {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return gormlogger.Warn
	}
	switch {
	case lvl >= logrus.DebugLevel:
		return gormlogger.Info
	case lvl >= logrus.WarnLevel:
		return gormlogger.Warn
	case lvl >= logrus.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.WithContext(ctx).Infof(msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.WithContext(ctx).Warnf(msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.WithContext(ctx).Errorf(msg, args...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := l.log.WithContext(ctx).WithFields(logrus.Fields{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
	})

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		entry.WithError(err).Error("gorm: query failed")
	case elapsed > l.slow && l.slow > 0 && l.level >= gormlogger.Warn:
		entry.Warn("gorm: slow query")
	case l.level >= gormlogger.Info:
		entry.Debug("gorm: query")
	}
}
