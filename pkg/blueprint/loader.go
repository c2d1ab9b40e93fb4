package blueprint

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a blueprint document. JSON is attempted first, then YAML,
// so both formats share one entry point. The decoded blueprint is
// validated before it is returned.
func Parse(data []byte) (Blueprint, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Blueprint{}, fmt.Errorf("blueprint: document is empty")
	}

	var bp Blueprint
	if err := json.Unmarshal(data, &bp); err != nil {
		bp = Blueprint{}
		if err := yaml.Unmarshal(data, &bp); err != nil {
			return Blueprint{}, fmt.Errorf("blueprint: parse: invalid JSON or YAML")
		}
	}

	if err := validate(bp); err != nil {
		return Blueprint{}, err
	}
	return bp, nil
}

// LoadFS reads and parses a blueprint file from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (Blueprint, error) {
	if fsys == nil {
		return Blueprint{}, fmt.Errorf("blueprint: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Blueprint{}, fmt.Errorf("blueprint: read %s: %w", path, err)
	}
	bp, err := Parse(data)
	if err != nil {
		return Blueprint{}, fmt.Errorf("blueprint: file %s: %w", path, err)
	}
	return bp, nil
}

// LoadFile reads and parses a blueprint from a path on disk.
func LoadFile(path string) (Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Blueprint{}, fmt.Errorf("blueprint: read %s: %w", path, err)
	}
	bp, err := Parse(data)
	if err != nil {
		return Blueprint{}, fmt.Errorf("blueprint: file %s: %w", path, err)
	}
	return bp, nil
}

func validate(bp Blueprint) error {
	if len(bp.Fields) == 0 {
		return fmt.Errorf("blueprint: no fields defined")
	}
	seen := make(map[string]struct{}, len(bp.Fields))
	for i, f := range bp.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("blueprint: field %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("blueprint: duplicate field name %q", name)
		}
		seen[name] = struct{}{}
		if f.Kind == KindSelect && len(f.Options) == 0 {
			return fmt.Errorf("blueprint: select field %q has no options", name)
		}
	}
	return nil
}
