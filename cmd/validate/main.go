package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/rockhound/pkg/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <locations.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &LocationsValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Locations file is valid!")
}

type LocationsValidator struct {
	errors []string
}

func (v *LocationsValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("locations file must have .json extension: %s", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	var locations []catalog.Location
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&locations); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateLocations(locations)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *LocationsValidator) validateLocations(locations []catalog.Location) {
	if len(locations) == 0 {
		v.addError("locations file is empty")
		return
	}

	seen := make(map[string]int)
	for i, loc := range locations {
		if loc.ID == "" {
			v.addError(fmt.Sprintf("location %d (%s): id is required", i, loc.Name))
		} else if prev, dup := seen[loc.ID]; dup {
			v.addError(fmt.Sprintf("location %d: duplicate id %q (first used by location %d)", i, loc.ID, prev))
		} else {
			seen[loc.ID] = i
		}

		if loc.Name == "" {
			v.addError(fmt.Sprintf("location %d (id %s): name is required", i, loc.ID))
		}

		for j, img := range loc.Images {
			if strings.TrimSpace(img) == "" {
				v.addError(fmt.Sprintf("location %d (id %s): image %d is blank", i, loc.ID, j))
			}
		}
		for j, mineral := range loc.Minerals {
			if strings.TrimSpace(mineral) == "" {
				v.addError(fmt.Sprintf("location %d (id %s): mineral %d is blank", i, loc.ID, j))
			}
		}
	}
}

func (v *LocationsValidator) addError(msg string) {
	v.errors = append(v.errors, msg)
}
