package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwebster45206/rockhound/pkg/catalog"
)

// LocationsFile is the seed file loaded from the data dir.
const LocationsFile = "locations.json"

// LoadLocations reads the location set from dataDir. Order in the file is
// the catalog's insertion order. Slices are normalized so absent fields act
// as empty sequences; ids must be present and unique.
func LoadLocations(dataDir string) ([]catalog.Location, error) {
	path := filepath.Join(dataDir, LocationsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read locations file %s: %w", path, err)
	}

	var locations []catalog.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(locations))
	for i := range locations {
		loc := &locations[i]
		if loc.ID == "" {
			return nil, fmt.Errorf("location %d (%s) has empty id", i, loc.Name)
		}
		if seen[loc.ID] {
			return nil, fmt.Errorf("duplicate location id: %s", loc.ID)
		}
		seen[loc.ID] = true
		loc.Normalize()
	}

	return locations, nil
}
