package geometry

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a hull definition from a JSON file
func LoadFromFile(filepath string) (*Hull, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var hull Hull
	if err := json.Unmarshal(data, &hull); err != nil {
		return nil, err
	}

	if err := hull.Validate(); err != nil {
		return nil, err
	}

	return &hull, nil
}
