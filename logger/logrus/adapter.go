package logrus

import (
	"github.com/diorw/parade-server/logger"

	"github.com/sirupsen/logrus"
)

type LogrusAdapter struct {
	entry *logrus.Entry
}

func NewAdapter(log *logrus.Logger) *LogrusAdapter {
	return &LogrusAdapter{entry: logrus.NewEntry(log)}
}

// GetLevel implements logger.Logger.
func (l *LogrusAdapter) GetLevel() logger.Level {
	return toLevel(l.entry.Logger.GetLevel())
}

// SetLevel implements logger.Logger.
func (l *LogrusAdapter) SetLevel(level logger.Level) {
	l.entry.Logger.SetLevel(toLogrusLevel(level))
}

// Trace implements logger.Logger.
func (l *LogrusAdapter) Trace(args ...any) {
	l.entry.Trace(args...)
}

// Debug implements logger.Logger.
func (l *LogrusAdapter) Debug(args ...any) {
	l.entry.Debug(args...)
}

// Info implements logger.Logger.
func (l *LogrusAdapter) Info(args ...any) {
	l.entry.Info(args...)
}

// Warn implements logger.Logger.
func (l *LogrusAdapter) Warn(args ...any) {
	l.entry.Warn(args...)
}

// Error implements logger.Logger.
func (l *LogrusAdapter) Error(args ...any) {
	l.entry.Error(args...)
}

// Fatal implements logger.Logger.
func (l *LogrusAdapter) Fatal(args ...any) {
	l.entry.Fatal(args...)
}

// Tracef implements logger.Logger.
func (l *LogrusAdapter) Tracef(format string, args ...any) {
	l.entry.Tracef(format, args...)
}

// Debugf implements logger.Logger.
func (l *LogrusAdapter) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

// Infof implements logger.Logger.
func (l *LogrusAdapter) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

// Warnf implements logger.Logger.
func (l *LogrusAdapter) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

// Errorf implements logger.Logger.
func (l *LogrusAdapter) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

// Fatalf implements logger.Logger.
func (l *LogrusAdapter) Fatalf(format string, args ...any) {
	l.entry.Fatalf(format, args...)
}

// WithError implements logger.Logger.
func (l *LogrusAdapter) WithError(err error) logger.Logger {
	return &LogrusAdapter{entry: l.entry.WithError(err)}
}

// WithField implements logger.Logger.
func (l *LogrusAdapter) WithField(key string, value any) logger.Logger {
	return &LogrusAdapter{entry: l.entry.WithField(key, value)}
}

// WithFields implements logger.Logger.
func (l *LogrusAdapter) WithFields(fields map[string]any) logger.Logger {
	return &LogrusAdapter{entry: l.entry.WithFields(fields)}
}

// toLevel converts logrus.Level to logger.Level.
func toLevel(level logrus.Level) logger.Level {
	levelMap := map[logrus.Level]logger.Level{
		logrus.TraceLevel: logger.TraceLevel,
		logrus.DebugLevel: logger.DebugLevel,
		logrus.InfoLevel:  logger.InfoLevel,
		logrus.WarnLevel:  logger.WarnLevel,
		logrus.ErrorLevel: logger.ErrorLevel,
		logrus.FatalLevel: logger.FatalLevel,
		logrus.PanicLevel: logger.PanicLevel,
	}

	if level, ok := levelMap[level]; ok {
		return level
	}

	return logger.NoLevel
}

// toLogrusLevel converts logger.Level to logrus.Level.
func toLogrusLevel(level logger.Level) logrus.Level {
	levelMap := map[logger.Level]logrus.Level{
		logger.TraceLevel: logrus.TraceLevel,
		logger.DebugLevel: logrus.DebugLevel,
		logger.InfoLevel:  logrus.InfoLevel,
		logger.WarnLevel:  logrus.WarnLevel,
		logger.ErrorLevel: logrus.ErrorLevel,
		logger.FatalLevel: logrus.FatalLevel,
		logger.PanicLevel: logrus.PanicLevel,
	}

	if level, ok := levelMap[level]; ok {
		return level
	}

	return logrus.InfoLevel
}
