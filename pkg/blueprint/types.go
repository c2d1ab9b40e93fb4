package blueprint

// Blueprint describes a replicating surface: the identifier seed, the add
// affordance label, and the fields each replicated record carries.
type Blueprint struct {
	// Name identifies the blueprint; informational only.
	Name string `json:"name" yaml:"name"`
	// Seed becomes the template's prefix seed ("addr" yields "addr_0-").
	Seed string `json:"seed" yaml:"seed"`
	// Title is the surface heading shell renderers display.
	Title string `json:"title" yaml:"title"`
	// AddLabel overrides the add affordance's button text.
	AddLabel string `json:"addLabel" yaml:"addLabel"`
	// Fields are rendered in declaration order.
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field describes one form control inside a record.
type Field struct {
	// Name becomes the control's id and name attributes and the label's
	// for target. Required and unique within a blueprint.
	Name string `json:"name" yaml:"name"`
	// Label is the visible label text; defaults to Name when empty.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Kind selects the control: text, email, password, number, date,
	// checkbox, hidden, select, textarea. Empty means text.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Placeholder is stamped on text-like controls.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	// Default pre-populates the control's value.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
	// Required marks the control with the required attribute.
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Rows sizes textarea controls.
	Rows int `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Options populate select controls.
	Options []Choice `json:"options,omitempty" yaml:"options,omitempty"`
}

// Choice is one option of a select field.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// field kinds with a dedicated control shape; everything else maps to an
// input with the kind as its type attribute.
const (
	KindText     = "text"
	KindSelect   = "select"
	KindTextArea = "textarea"
	KindCheckbox = "checkbox"
)
