package catalog

// Location describes a single rockhounding site. Locations are immutable
// once loaded; display order of minerals, images and tools is meaningful.
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`        // e.g. Volcanic, Sedimentary
	Description string   `json:"description,omitempty"` // Site description
	Difficulty  string   `json:"difficulty,omitempty"`  // Free text, e.g. "Easy"
	Access      string   `json:"access,omitempty"`      // How to reach the site
	Minerals    []string `json:"minerals"`              // First 3 shown on collapsed cards
	Images      []string `json:"images"`                // Image source URIs, may be empty
	Tools       []string `json:"tools"`                 // Suggested tools
}

// Normalize replaces nil slices with empty ones so that absent JSON fields
// behave like empty sequences everywhere downstream.
func (l *Location) Normalize() {
	if l.Minerals == nil {
		l.Minerals = []string{}
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	if l.Tools == nil {
		l.Tools = []string{}
	}
}
