package domain

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseContract decodes an OpenAPI contract from JSON or YAML, chosen by the
// file extension, and returns it re-encoded as indented JSON.
func ParseContract(name string, data []byte) (string, error) {
	var doc any

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return "", fmt.Errorf("failed to parse contract %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return "", fmt.Errorf("failed to parse contract %s: %w", name, err)
		}

		doc = normalizeYAML(doc)
	default:
		return "", fmt.Errorf("unsupported contract format %q (want .json, .yaml or .yml)", ext)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return "", fmt.Errorf("contract %s is not an object", name)
	}

	if !hasAnyKey(obj, "openapi", "swagger", "paths") {
		slog.Warn("Contract does not look like an OpenAPI document", "contract", name)
	}

	rendered, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode contract %s: %w", name, err)
	}

	return string(rendered), nil
}

// normalizeYAML turns maps with non-string keys (such as status codes) into
// string-keyed maps so the document can be encoded as JSON.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeYAML(item)
		}

		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}

		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}

		return v
	default:
		return v
	}
}

func hasAnyKey(obj map[string]any, keys ...string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; ok {
			return true
		}
	}

	return false
}
