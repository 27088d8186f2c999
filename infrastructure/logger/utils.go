package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs that functionName started and returns a
// function that logs how long it took. Use it as:
//
//	onEnd := LogAndMeasureExecutionTime(log, "functionName")
//	defer onEnd()
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Tracef("%s start", functionName)
	return func() {
		log.Tracef("%s end. Took: %s", functionName, time.Since(start))
	}
}
