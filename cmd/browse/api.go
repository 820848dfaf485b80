package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jwebster45206/rockhound/internal/handlers"
	"github.com/jwebster45206/rockhound/pkg/catalog"
)

func testConnection(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()
	return resp.StatusCode == http.StatusOK
}

// fetchLocations retrieves the full location set. Filtering happens
// client-side so the catalog behaves the same with a flaky connection.
func fetchLocations(client *http.Client, baseURL string) ([]catalog.Location, error) {
	resp, err := client.Get(baseURL + "/v1/locations")
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var locations []catalog.Location
	if err := json.Unmarshal(body, &locations); err != nil {
		return nil, fmt.Errorf("failed to parse locations response: %w", err)
	}
	return locations, nil
}

// reportImageFailure shares a failed load with the API so other sessions
// skip the same image. The local cache has already recorded it.
func reportImageFailure(client *http.Client, baseURL, locationID string, imageIndex int, displayName string) error {
	req := handlers.ImageFailureRequest{
		LocationID:  locationID,
		ImageIndex:  imageIndex,
		DisplayName: displayName,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := client.Post(
		baseURL+"/v1/images/failures",
		"application/json",
		bytes.NewBuffer(jsonData),
	)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failure report returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
