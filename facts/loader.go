package facts

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileFact is the authored on-disk shape of one fact. The schema for
// this format is generated by cmd/factschema.
type FileFact struct {
	Name        string `json:"name" jsonschema:"required,description=Short headline shown first in the reveal"`
	Description string `json:"description,omitempty" jsonschema:"description=One-line elaboration appended after the name"`
	Details     string `json:"details,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars,omitempty" jsonschema:"minimum=0"`
	Origin      string `json:"origin,omitempty" jsonschema:"enum=project,enum=profile,enum=resume,description=Selection pool the fact joins (default resume)"`
	Category    string `json:"category,omitempty" jsonschema:"description=Tag controlling the reveal glyph"`
}

// FactFile is the authored facts document
type FactFile struct {
	Facts []FileFact `json:"facts" jsonschema:"required"`
}

// LoadAuthoredFile reads and converts a hand-written facts file.
// Entries without a name are skipped rather than failing the file.
func LoadAuthoredFile(path string) ([]Fact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read facts file: %w", err)
	}

	var file FactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse facts file: %w", err)
	}

	out := make([]Fact, 0, len(file.Facts))
	for _, ff := range file.Facts {
		if ff.Name == "" {
			continue
		}
		out = append(out, Fact{
			Name:        ff.Name,
			Description: ff.Description,
			Details:     ff.Details,
			Language:    ff.Language,
			StarCount:   ff.Stars,
			Origin:      parseOrigin(ff.Origin),
			Category:    ff.Category,
		})
	}
	return out, nil
}

func parseOrigin(s string) Origin {
	switch s {
	case "project":
		return OriginProject
	case "profile":
		return OriginProfile
	default:
		return OriginResume
	}
}
