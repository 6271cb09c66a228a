// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel
//   - WarningLevel
//   - ErrorLevel
//   - FatalLevel (lowest verbosity)
//
// Output goes to stderr unless redirected with SetOutput. Library
// packages in this module only log at DebugLevel; the level is chosen by
// the command-line tool.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

type level int32

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs info messages and and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel logs error messages and above
	FatalLevel                // FatalLevel only logs fatal messages
)

type tag struct {
	name  string
	color string
}

var (
	tagDebug   = tag{"DEBU", "\x1b[90m"}
	tagInfo    = tag{"INFO", "\x1b[36m"}
	tagWarning = tag{"WARN", "\x1b[33m"}
	tagError   = tag{"ERRO", "\x1b[31m"}
	tagFatal   = tag{"FATA", "\x1b[35m"}
)

const colorReset = "\x1b[0m"

var (
	currentLevel int32
	useColor     int32
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	currentLevel = int32(InfoLevel)
}

// SetLevel sets the logging level.  Available options: DebugLevel, InfoLevel,
// WarningLevel, ErrorLevel, FatalLevel.
func SetLevel(lv level) {
	atomic.StoreInt32(&currentLevel, int32(lv))
}

func SetLevelFromString(levelName string) error {
	switch levelName {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "warning":
		SetLevel(WarningLevel)
	case "error":
		SetLevel(ErrorLevel)
	case "fatal":
		SetLevel(FatalLevel)
	default:
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	return nil
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetDate controls whether messages are prefixed by date and time.
func SetDate(enabled bool) {
	if enabled {
		logger.SetFlags(log.LstdFlags)
	} else {
		logger.SetFlags(0)
	}
}

// SetColor controls whether level tags are colored with ANSI escapes.
func SetColor(enabled bool) {
	var v int32
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&useColor, v)
}

func isEnabled(lv level) bool {
	return level(atomic.LoadInt32(&currentLevel)) <= lv
}

func prefix(t tag) string {
	if atomic.LoadInt32(&useColor) != 0 {
		return "[" + t.color + t.name + colorReset + "] "
	}
	return "[" + t.name + "] "
}

func Debug(format string, v ...interface{}) {
	if isEnabled(DebugLevel) {
		logger.Printf(prefix(tagDebug)+format, v...)
	}
}

func Info(format string, v ...interface{}) {
	if isEnabled(InfoLevel) {
		logger.Printf(prefix(tagInfo)+format, v...)
	}
}

func Warning(format string, v ...interface{}) {
	if isEnabled(WarningLevel) {
		logger.Printf(prefix(tagWarning)+format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if isEnabled(ErrorLevel) {
		logger.Printf(prefix(tagError)+format, v...)
	}
}

func Fatal(format string, v ...interface{}) {
	logger.Fatalf(prefix(tagFatal)+format, v...)
}
