package scaffold

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formrepeat/pkg/dom"
)

func sortedPropertyNames(properties openapi3.Schemas) []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildField(name string, schema *openapi3.Schema, required bool, cfg config) *dom.Node {
	wrapper := dom.NewElement("div", dom.Attr{Key: "class", Value: "field"})

	label := dom.NewElement("label", dom.Attr{Key: "for", Value: name})
	label.AppendChild(dom.NewText(labelFor(name, schema)))
	wrapper.AppendChild(label)
	wrapper.AppendChild(buildControl(name, schema, required, cfg))

	return wrapper
}

func buildControl(name string, schema *openapi3.Schema, required bool, cfg config) *dom.Node {
	switch {
	case len(schema.Enum) > 0:
		return buildEnumSelect(name, schema, required)
	case schemaIs(schema, "boolean"):
		return buildCheckbox(name, schema)
	case schemaIs(schema, "integer"), schemaIs(schema, "number"):
		return buildNumberInput(name, schema, required)
	default:
		return buildStringControl(name, schema, required, cfg)
	}
}

func buildEnumSelect(name string, schema *openapi3.Schema, required bool) *dom.Node {
	sel := dom.NewElement("select",
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if required {
		sel.SetAttr("required", "required")
	}
	defaultValue := stringify(schema.Default)
	for _, entry := range schema.Enum {
		value := stringify(entry)
		opt := dom.NewElement("option", dom.Attr{Key: "value", Value: value})
		if value == defaultValue && value != "" {
			opt.SetAttr("selected", "selected")
		}
		opt.AppendChild(dom.NewText(value))
		sel.AppendChild(opt)
	}
	return sel
}

func buildCheckbox(name string, schema *openapi3.Schema) *dom.Node {
	input := dom.NewElement("input",
		dom.Attr{Key: "type", Value: "checkbox"},
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if truthy, ok := schema.Default.(bool); ok && truthy {
		input.SetAttr("checked", "checked")
	}
	return input
}

func buildNumberInput(name string, schema *openapi3.Schema, required bool) *dom.Node {
	input := dom.NewElement("input",
		dom.Attr{Key: "type", Value: "number"},
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if schemaIs(schema, "integer") {
		input.SetAttr("step", "1")
	}
	if schema.Min != nil {
		input.SetAttr("min", formatNumber(*schema.Min))
	}
	if schema.Max != nil {
		input.SetAttr("max", formatNumber(*schema.Max))
	}
	if schema.Default != nil {
		input.SetAttr("value", stringify(schema.Default))
	}
	if required {
		input.SetAttr("required", "required")
	}
	return input
}

func buildStringControl(name string, schema *openapi3.Schema, required bool, cfg config) *dom.Node {
	if schema.MaxLength != nil && int(*schema.MaxLength) >= cfg.textareaThreshold {
		area := dom.NewElement("textarea",
			dom.Attr{Key: "id", Value: name},
			dom.Attr{Key: "name", Value: name},
		)
		area.SetAttr("maxlength", strconv.FormatUint(*schema.MaxLength, 10))
		if required {
			area.SetAttr("required", "required")
		}
		if value := stringify(schema.Default); value != "" {
			area.AppendChild(dom.NewText(value))
		}
		return area
	}

	input := dom.NewElement("input",
		dom.Attr{Key: "type", Value: inputTypeForFormat(schema.Format)},
		dom.Attr{Key: "id", Value: name},
		dom.Attr{Key: "name", Value: name},
	)
	if schema.MaxLength != nil {
		input.SetAttr("maxlength", strconv.FormatUint(*schema.MaxLength, 10))
	}
	if schema.Pattern != "" {
		input.SetAttr("pattern", schema.Pattern)
	}
	if value := stringify(schema.Default); value != "" {
		input.SetAttr("value", value)
	}
	if example := stringify(schema.Example); example != "" {
		input.SetAttr("placeholder", example)
	}
	if required {
		input.SetAttr("required", "required")
	}
	return input
}

func inputTypeForFormat(format string) string {
	switch format {
	case "email":
		return "email"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "password":
		return "password"
	case "uri", "url":
		return "url"
	case "uuid":
		return "text"
	default:
		return "text"
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
