package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/syahrilTGR/CaloriLens/utils"
)

// A catalog entry from foods.json
type Food struct {
	ID       string  `json:"-"`
	Name     string  `json:"name"`
	Proteins float64 `json:"proteins"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

func (f Food) Calories() float64 {
	return utils.Calories(f.Proteins, f.Fat, f.Carbs)
}

// LoadCatalog reads and parses the local foods.json file.
func LoadCatalog(path string) ([]Food, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog parses a JSON object of id → food, preserving the file's key
// order. The dummy meal plan addresses foods by catalog index, so decoding
// into a Go map (random iteration order) would not work.
func ParseCatalog(raw []byte) ([]Food, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("catalog root must be a JSON object, got %v", tok)
	}

	var foods []Food
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected catalog key %v", keyTok)
		}

		var f Food
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse catalog entry %q: %w", id, err)
		}
		f.ID = id
		foods = append(foods, f)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return foods, nil
}
