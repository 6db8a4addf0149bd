package logger

import (
	"log"
	"os"
)

var (
	// InfoLogger for normal operational messages.
	InfoLogger *log.Logger
	// ErrorLogger for failures surfaced to the operator.
	ErrorLogger *log.Logger
)

// Init sets up the process-wide loggers. Call once from main.
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
