package utils

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var debugEnabled atomic.Bool

func init() {
	debugEnabled.Store(true)
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	debugEnabled.Store(enabled)
}

func format(message string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

func LogInfo(component, message string, args ...interface{}) {
	log.Printf("%s[INFO]%s %s[%s]%s %s",
		ColorBlue, ColorReset,
		ColorCyan, component, ColorReset,
		format(message, args))
}

func LogSuccess(component, message string, args ...interface{}) {
	log.Printf("%s[SUCCESS]%s %s[%s]%s %s",
		ColorGreen, ColorReset,
		ColorCyan, component, ColorReset,
		format(message, args))
}

func LogWarning(component, message string, args ...interface{}) {
	log.Printf("%s[WARNING]%s %s[%s]%s %s",
		ColorYellow, ColorReset,
		ColorCyan, component, ColorReset,
		format(message, args))
}

func LogError(component, message string, err error) {
	if err != nil {
		log.Printf("%s[ERROR]%s %s[%s]%s %s: %s%v%s",
			ColorRed, ColorReset,
			ColorCyan, component, ColorReset,
			message,
			ColorRed, err, ColorReset)
	} else {
		log.Printf("%s[ERROR]%s %s[%s]%s %s",
			ColorRed, ColorReset,
			ColorCyan, component, ColorReset,
			message)
	}
}

func LogDebug(component, message string, args ...interface{}) {
	if !debugEnabled.Load() {
		return
	}
	log.Printf("%s[DEBUG]%s %s[%s]%s %s",
		ColorPurple, ColorReset,
		ColorCyan, component, ColorReset,
		format(message, args))
}

func LogRequest(method, path, requestID string) {
	log.Printf("%s[REQUEST]%s %s%s%s %s | RequestID: %s%s%s",
		ColorCyan, ColorReset,
		ColorWhite, method, ColorReset,
		path,
		ColorYellow, requestID, ColorReset)
}

func LogResponse(path string, statusCode int, duration time.Duration) {
	color := ColorGreen
	if statusCode >= 400 && statusCode < 500 {
		color = ColorYellow
	} else if statusCode >= 500 {
		color = ColorRed
	}

	log.Printf("%s[RESPONSE]%s %s | Status: %s%d%s | Duration: %s%v%s",
		ColorGray, ColorReset,
		path,
		color, statusCode, ColorReset,
		ColorWhite, duration, ColorReset)
}

// LogStore traces a mutation or lookup against an in-memory store.
func LogStore(operation, detail string) {
	log.Printf("%s[STORE]%s %s[%s]%s %s",
		ColorGray, ColorReset,
		ColorWhite, operation, ColorReset,
		detail)
}
