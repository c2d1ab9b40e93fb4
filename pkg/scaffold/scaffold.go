package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formrepeat/pkg/dom"
)

const defaultContentType = "application/json"

// Option customises the scaffolding configuration.
type Option func(*config)

type config struct {
	contentType       string
	textareaThreshold int
	includeReadOnly   bool
}

// WithContentType selects which request body content type carries the
// schema. Defaults to application/json.
func WithContentType(contentType string) Option {
	return func(cfg *config) {
		if contentType != "" {
			cfg.contentType = contentType
		}
	}
}

// WithTextareaThreshold sets the maxLength at or above which string
// properties scaffold as textareas instead of single-line inputs.
func WithTextareaThreshold(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.textareaThreshold = n
		}
	}
}

// WithReadOnly includes readOnly properties, which are skipped by default.
func WithReadOnly() Option {
	return func(cfg *config) {
		cfg.includeReadOnly = true
	}
}

func newConfig(options []Option) config {
	cfg := config{
		contentType:       defaultContentType,
		textareaThreshold: 256,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// FromData loads an OpenAPI document from raw bytes and scaffolds the seed
// container for the named operation's request body schema.
func FromData(ctx context.Context, data []byte, operationID string, options ...Option) (*dom.Node, error) {
	if len(data) == 0 {
		return nil, errors.New("scaffold: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("scaffold: load document: %w", err)
	}
	return fromSpec(spec, operationID, newConfig(options))
}

// FromFile loads an OpenAPI document from a path on disk and scaffolds the
// seed container for the named operation.
func FromFile(ctx context.Context, path, operationID string, options ...Option) (*dom.Node, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("scaffold: load %s: %w", path, err)
	}
	return fromSpec(spec, operationID, newConfig(options))
}

func fromSpec(spec *openapi3.T, operationID string, cfg config) (*dom.Node, error) {
	if operationID == "" {
		return nil, errors.New("scaffold: operation id is required")
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("scaffold: operation %q not found", operationID)
	}

	schema := requestSchema(operation, cfg.contentType)
	if schema == nil {
		return nil, fmt.Errorf("scaffold: operation %q has no %s request schema", operationID, cfg.contentType)
	}

	return containerFromSchema(schema, cfg)
}

// ContainerFromSchema scaffolds a seed container directly from an object
// schema, bypassing document and operation resolution.
func ContainerFromSchema(schema *openapi3.Schema, options ...Option) (*dom.Node, error) {
	return containerFromSchema(schema, newConfig(options))
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation, contentType string) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	media := operation.RequestBody.Value.Content.Get(contentType)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func containerFromSchema(schema *openapi3.Schema, cfg config) (*dom.Node, error) {
	if schema == nil {
		return nil, errors.New("scaffold: schema is required")
	}
	if !schemaIs(schema, "object") || len(schema.Properties) == 0 {
		return nil, errors.New("scaffold: schema is not an object with properties")
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	container := dom.NewElement("div")
	for _, name := range sortedPropertyNames(schema.Properties) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		prop := ref.Value
		if prop.ReadOnly && !cfg.includeReadOnly {
			continue
		}
		_, isRequired := required[name]
		container.AppendChild(buildField(name, prop, isRequired, cfg))
	}

	if len(container.Children) == 0 {
		return nil, errors.New("scaffold: schema yields no scaffoldable fields")
	}
	return container, nil
}

func schemaIs(schema *openapi3.Schema, kind string) bool {
	if schema.Type == nil {
		// Untyped schemas with properties are treated as objects, matching
		// how permissive documents in the wild omit "type: object".
		return kind == "object" && len(schema.Properties) > 0
	}
	return schema.Type.Is(kind)
}

func labelFor(name string, schema *openapi3.Schema) string {
	if schema.Title != "" {
		return schema.Title
	}
	return humanise(name)
}

// humanise turns camelCase and snake_case property names into label text.
func humanise(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			sb.WriteByte(' ')
			prevLower = false
		case r >= 'A' && r <= 'Z' && prevLower:
			sb.WriteByte(' ')
			sb.WriteRune(r + ('a' - 'A'))
			prevLower = false
		default:
			sb.WriteRune(r)
			prevLower = r >= 'a' && r <= 'z'
		}
	}
	out := sb.String()
	if out == "" {
		return name
	}
	return strings.ToUpper(out[:1]) + out[1:]
}
