package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  int
	json   bool
}

// New creates a text-format Logger at the given level. Unknown levels
// fall back to info.
func New(level string) Logger {
	return NewWithFormat(level, "text")
}

// NewWithFormat creates a Logger writing either "text" or "json" lines.
func NewWithFormat(level, format string) Logger {
	rank, ok := levelRank[strings.ToLower(level)]
	if !ok {
		rank = levelRank["info"]
	}
	jsonFormat := strings.EqualFold(format, "json")

	flags := log.LstdFlags
	if jsonFormat {
		flags = 0 // the timestamp goes inside the JSON record
	}
	return &implLogger{
		logger: log.New(os.Stdout, "", flags),
		level:  rank,
		json:   jsonFormat,
	}
}

func (l *implLogger) log(level, msg string, args ...interface{}) {
	rank, ok := levelRank[level]
	if ok && rank < l.level {
		return
	}

	if !l.json {
		l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
		return
	}

	record, err := json.Marshal(map[string]interface{}{
		"time":  time.Now().Format(time.RFC3339),
		"level": level,
		"msg":   fmt.Sprintf(msg, args...),
	})
	if err != nil {
		l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
		return
	}
	l.logger.Print(string(record))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log("error", msg, args...)
}
