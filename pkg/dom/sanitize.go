package dom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizeFragment reduces untrusted markup to the form vocabulary the
// replication model understands. Scripts, event handlers, and attributes
// outside the allow list are stripped; structural and form-control markup
// passes through unchanged.
func SanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(trimmed))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"div", "span", "p", "fieldset", "legend", "label",
			"input", "select", "option", "optgroup", "textarea", "datalist",
			"button", "output", "ul", "ol", "li", "br",
			"strong", "em", "small",
		)

		policy.AllowAttrs("id", "name", "class").Globally()
		policy.AllowAttrs("for").OnElements("label", "output")
		policy.AllowAttrs(
			"type", "value", "placeholder", "list", "autocomplete",
			"required", "checked", "min", "max", "step",
			"minlength", "maxlength", "pattern", "readonly", "disabled",
		).OnElements("input")
		policy.AllowAttrs(
			"rows", "cols", "placeholder", "required",
			"minlength", "maxlength", "readonly", "disabled",
		).OnElements("textarea")
		policy.AllowAttrs("multiple", "size", "required", "disabled").OnElements("select")
		policy.AllowAttrs("value", "label", "selected", "disabled").OnElements("option")
		policy.AllowAttrs("label", "disabled").OnElements("optgroup")
		policy.AllowAttrs("type", "disabled").OnElements("button")

		fragmentPolicy = policy
	})
	return fragmentPolicy
}
