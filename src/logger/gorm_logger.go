package logger

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes gorm's SQL logging through logrus so database traffic
// shares the application's log stream and formatting.
type GormLogger struct {
	logger *logrus.Logger
}

func NewGormLogger() *GormLogger {
	return &GormLogger{
		logger: logrus.StandardLogger(),
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	return &newLogger
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Infof(msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Warnf(msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	l.logger.WithContext(ctx).Errorf(msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := logrus.Fields{
		"elapsed": elapsed,
		"rows":    rows,
		"sql":     sql,
	}

	entry := l.logger.WithContext(ctx).WithFields(fields)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		entry.Error(err)
	case elapsed > slowQueryThreshold:
		entry.Warnf("SLOW SQL >= %s", slowQueryThreshold)
	default:
		entry.Trace("SQL")
	}
}
