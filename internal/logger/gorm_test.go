package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLevel(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"trace":   gormlogger.Info,
		"debug":   gormlogger.Info,
		"info":    gormlogger.Warn,
		"warning": gormlogger.Warn,
		"error":   gormlogger.Error,
		"fatal":   gormlogger.Silent,
		"bogus":   gormlogger.Warn,
	}
	for name, want := range tests {
		assert.Equal(t, want, GormLevel(name), name)
	}
}

func newTestGormLogger(level gormlogger.LogLevel) (*gormLogger, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)
	return &gormLogger{log: log, level: level, slow: SlowQueryThreshold}, hook
}

func query(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestTraceLogsFailedQueries(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Error)

	l.Trace(context.Background(), time.Now(), query("INSERT INTO schedules", 0), errors.New("FOREIGN KEY constraint failed"))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "gorm: query failed", entry.Message)
	assert.Equal(t, "INSERT INTO schedules", entry.Data["sql"])
}

func TestTraceIgnoresRecordNotFound(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Warn)

	l.Trace(context.Background(), time.Now(), query("SELECT * FROM food_trucks", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, hook.AllEntries())
}

func TestTraceWarnsOnSlowQueries(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Warn)

	l.Trace(context.Background(), time.Now().Add(-time.Second), query("SELECT * FROM schedules", 3), nil)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "gorm: slow query", entry.Message)
	assert.Equal(t, int64(3), entry.Data["rows"])
}

func TestTraceDebugOnlyAtInfo(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Warn)
	l.Trace(context.Background(), time.Now(), query("SELECT 1", 1), nil)
	assert.Empty(t, hook.AllEntries())

	verbose := l.LogMode(gormlogger.Info).(*gormLogger)
	verbose.Trace(context.Background(), time.Now(), query("SELECT 1", 1), nil)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, gormlogger.Warn, l.level, "LogMode must not change the original")
}

func TestTraceSilent(t *testing.T) {
	l, hook := newTestGormLogger(gormlogger.Silent)
	l.Trace(context.Background(), time.Now(), query("DELETE FROM food_trucks", 1), errors.New("boom"))
	assert.Empty(t, hook.AllEntries())
}
