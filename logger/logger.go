// Package logger is a minimal leveled logger for programs that want evac's
// diagnostics on stderr without pulling in slog configuration. It satisfies
// the evac.Logger interface.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type Level int8

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return "DEBUG"
}

type Logger struct {
	inner [4]*log.Logger
}

func New(level Level) *Logger {
	l := &Logger{}

	for lvl := ERROR; lvl >= DEBUG; lvl-- {
		if level > lvl {
			l.inner[lvl] = log.New(io.Discard, lvl.String()+" ", log.LstdFlags)
			continue
		}

		l.inner[lvl] = log.New(os.Stderr, lvl.String()+" ", log.LstdFlags)
	}

	return l
}

func (l *Logger) Debug(msg string, args ...any) {
	l.inner[DEBUG].Println(format(msg, args...))
}

func (l *Logger) Info(msg string, args ...any) {
	l.inner[INFO].Println(format(msg, args...))
}

func (l *Logger) Warn(msg string, args ...any) {
	l.inner[WARN].Println(format(msg, args...))
}

func (l *Logger) Error(msg string, args ...any) {
	l.inner[ERROR].Println(format(msg, args...))
}

// format renders slog-style alternating key/value args as key=value pairs.
func format(msg string, args ...any) string {
	if len(args) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)

	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}

	if len(args)%2 != 0 {
		fmt.Fprintf(&sb, " %v", args[len(args)-1])
	}

	return sb.String()
}
