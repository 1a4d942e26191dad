package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelNames = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func Levelify(levelString string) (LogLevel, error) {
	upperLevelString := strings.ToUpper(levelString)
	for level, name := range levelNames {
		if name == upperLevelString {
			return level, nil
		}
	}
	return LevelDebug, fmt.Errorf("Unknown LogLevel string '%s', expected one of [DEBUG, INFO, WARN, ERROR, NONE]", levelString)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o loggerfakes/fake_logger.go . Logger

type Logger interface {
	Debug(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
	ErrorWithDetails(tag, msg string, args ...interface{})
	HandlePanic(tag string)
	Flush() error
}

type logger struct {
	level  LogLevel
	logger *log.Logger
}

func NewLogger(level LogLevel) Logger {
	return NewWriterLogger(level, os.Stderr)
}

func NewWriterLogger(level LogLevel, writer io.Writer) Logger {
	return &logger{
		level:  level,
		logger: log.New(writer, "", log.LstdFlags),
	}
}

func (l *logger) Flush() error { return nil }

func (l *logger) Debug(tag, msg string, args ...interface{}) {
	if l.level > LevelDebug {
		return
	}

	msg = fmt.Sprintf("DEBUG - %s", msg)
	l.printf(tag, msg, args...)
}

func (l *logger) Info(tag, msg string, args ...interface{}) {
	if l.level > LevelInfo {
		return
	}

	msg = fmt.Sprintf("INFO - %s", msg)
	l.printf(tag, msg, args...)
}

func (l *logger) Warn(tag, msg string, args ...interface{}) {
	if l.level > LevelWarn {
		return
	}

	msg = fmt.Sprintf("WARN - %s", msg)
	l.printf(tag, msg, args...)
}

func (l *logger) Error(tag, msg string, args ...interface{}) {
	if l.level > LevelError {
		return
	}

	msg = fmt.Sprintf("ERROR - %s", msg)
	l.printf(tag, msg, args...)
}

func (l *logger) ErrorWithDetails(tag, msg string, args ...interface{}) {
	msg = msg + "\n********************\n%s\n********************"
	l.Error(tag, msg, args...)
}

func (l *logger) HandlePanic(tag string) {
	if l.recoverPanic(tag) {
		os.Exit(2)
	}
}

func (l *logger) recoverPanic(tag string) bool {
	if e := recover(); e != nil {
		var msg string
		switch obj := e.(type) {
		case string:
			msg = obj
		case fmt.Stringer:
			msg = obj.String()
		case error:
			msg = obj.Error()
		default:
			msg = fmt.Sprintf("%#v", obj)
		}

		l.ErrorWithDetails(tag, "Panic: %s", msg, debug.Stack())
		return true
	}
	return false
}

func (l *logger) printf(tag, msg string, args ...interface{}) {
	msg = fmt.Sprintf("[%s] %s", tag, msg)
	l.logger.Output(2, fmt.Sprintf(msg, args...)) //nolint:errcheck
}
