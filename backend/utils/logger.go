package utils

import (
	"log"
	"os"
)

// InitLogger returns the process-wide logger.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[CodePrep] ", log.LstdFlags|log.LUTC)
}
