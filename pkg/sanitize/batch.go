package sanitize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoArray reports a batch that holds no element array.
var ErrNoArray = errors.New("sanitize: no element array found")

var fence = []byte("```")

// DecodeBatch extracts the element array from a generative response. It
// accepts bare JSON or YAML, markdown code fences around either, prose around
// a JSON array, and objects wrapping the array under "elements". Decoding is
// the only step that can fail; the decoded entries are left for Sanitize.
func DecodeBatch(data []byte) ([]any, error) {
	body := bytes.TrimSpace(stripFence(data))
	if len(body) == 0 {
		return nil, ErrNoArray
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if items, ok := elementArray(decoded); ok {
			return items, nil
		}
	}

	if start, end := bytes.IndexByte(body, '['), bytes.LastIndexByte(body, ']'); start >= 0 && end > start {
		var items []any
		if err := json.Unmarshal(body[start:end+1], &items); err == nil {
			return items, nil
		}
	}

	var doc any
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoArray, err)
	}
	if items, ok := elementArray(doc); ok {
		return items, nil
	}
	return nil, ErrNoArray
}

func elementArray(v any) ([]any, bool) {
	switch val := v.(type) {
	case []any:
		return val, true
	case map[string]any:
		if inner, ok := val["elements"].([]any); ok {
			return inner, true
		}
	}
	return nil, false
}

// stripFence returns the body of the first fenced block, or data unchanged
// when there is none.
func stripFence(data []byte) []byte {
	start := bytes.Index(data, fence)
	if start < 0 {
		return data
	}
	rest := data[start+len(fence):]
	// Skip the info string, e.g. ```json
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return data
	}
	if end := bytes.Index(rest, fence); end >= 0 {
		return rest[:end]
	}
	return rest
}
