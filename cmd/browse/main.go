package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type BrowseConfig struct {
	APIBaseURL    string
	Timeout       time.Duration
	PreloadImages bool
}

func main() {
	cfg := &BrowseConfig{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:       30 * time.Second,
		PreloadImages: getBoolEnv("PRELOAD_IMAGES", false),
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	locations, err := fetchLocations(client, cfg.APIBaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch locations: %v\n", err)
		os.Exit(1)
	}
	if len(locations) == 0 {
		fmt.Fprintf(os.Stderr, "The catalog is empty.\n")
		os.Exit(1)
	}

	ui, err := NewBrowseUI(cfg, client, locations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build catalog: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
