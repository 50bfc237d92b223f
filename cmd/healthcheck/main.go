// Command healthcheck probes the worker's /health endpoint. It is meant to
// run as a container liveness probe: exit 0 when the worker answers 200,
// exit 1 otherwise.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://localhost:" + port + "/health")
	if err != nil {
		fmt.Println("Audio worker is not running:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("Audio worker is unhealthy, status:", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Audio worker is healthy")
}
