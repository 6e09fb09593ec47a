package config

import (
	"fmt"
	"os"
	"strings"

	"talent-match/internal/domain/matching"

	"gopkg.in/yaml.v3"
)

// LoadWeights reads the scoring weight table. An empty path yields the built-in
// defaults; a file is decoded over the defaults so it may override any subset.
func LoadWeights(path string) (matching.Weights, error) {
	w := matching.DefaultWeights()
	if strings.TrimSpace(path) == "" {
		return w, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return matching.Weights{}, fmt.Errorf("read weights %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &w); err != nil {
		return matching.Weights{}, fmt.Errorf("parse weights %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return matching.Weights{}, fmt.Errorf("weights %s: %w", path, err)
	}
	return w, nil
}
