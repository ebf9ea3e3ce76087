package repository

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Feature lists are persisted as a JSON array in a TEXT column.

func encodeFeatures(features []string) (string, error) {
	if len(features) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(features)
	if err != nil {
		return "", fmt.Errorf("encode features: %w", err)
	}
	return string(data), nil
}

func decodeFeatures(raw *string) ([]string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []string{}, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(*raw), &features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	if features == nil {
		features = []string{}
	}
	return features, nil
}
