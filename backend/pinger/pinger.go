// Package pinger keeps a free-tier deployment awake by requesting its own
// public URL on an interval.
package pinger

import (
	"log"
	"net/http"
	"time"
)

const interval = 10 * time.Minute

// Start pings the URL immediately and then every 10 minutes, forever.
// Failures are logged and never abort the loop. A no-op when url is empty.
func Start(url string, logger *log.Logger) {
	if url == "" {
		return
	}
	if logger == nil {
		logger = log.Default()
	}

	go func() {
		ping(url, logger)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ping(url, logger)
		}
	}()
}

func ping(url string, logger *log.Logger) {
	resp, err := http.Get(url)
	if err != nil {
		logger.Printf("Ping error: %v", err)
		return
	}
	resp.Body.Close()
	logger.Printf("Pinged %s - Status: %d", url, resp.StatusCode)
}
