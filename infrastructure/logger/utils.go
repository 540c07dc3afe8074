package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs functionName at debug level and returns a
// function that, once called, logs how long has passed since.
//
// Usage: defer LogAndMeasureExecutionTime(log, "functionName")()
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
