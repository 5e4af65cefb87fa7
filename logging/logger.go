package logging

import (
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

var (
	defaultLogger = log.NewNopLogger()

	messageKey   interface{} = "msg"
	errorKey     interface{} = "error"
	hrefKey      interface{} = "href"
	timestampKey interface{} = "ts"
)

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() interface{} {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() interface{} {
	return errorKey
}

// HrefKey returns the logging key to be used for the address of a hypermedia link
func HrefKey() interface{} {
	return hrefKey
}

// TimestampKey returns the logging key to be used for the timestamp
func TimestampKey() interface{} {
	return timestampKey
}

// DefaultLogger returns a global singleton NOP logger.
// This returned instance is safe for concurrent access.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// New creates a go-kit Logger that emits logfmt output to os.Stdout.  The
// returned logger includes the timestamp in UTC format and filters according
// to the supplied level: DEBUG, INFO, WARN, or anything else for errors only.
func New(logLevel string) log.Logger {
	return NewFilter(
		log.WithPrefix(
			log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout)),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		logLevel,
	)
}

// NewFilter applies this package's level filtering rules to an arbitrary go-kit Logger.
func NewFilter(next log.Logger, logLevel string) log.Logger {
	switch logLevel {
	case "DEBUG":
		return level.NewFilter(next, level.AllowDebug())

	case "INFO":
		return level.NewFilter(next, level.AllowInfo())

	case "WARN":
		return level.NewFilter(next, level.AllowWarn())

	default:
		return level.NewFilter(next, level.AllowError())
	}
}

// Error places a constant error level into the prefix of the returned logger.
// Additional key value pairs may also be added.
func Error(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{level.Key(), level.ErrorValue()}, keyvals...)...,
	)
}

// Debug places a constant debug level into the prefix of the returned logger.
// Additional key value pairs may also be added.
func Debug(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{level.Key(), level.DebugValue()}, keyvals...)...,
	)
}
