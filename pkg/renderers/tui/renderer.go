package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

// Renderer implements render.Renderer for terminal-driven sessions. It fills
// each instance through interactive prompts, drives the add affordance with
// a confirm prompt, and serializes the collected submission.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	maxInstances      int
	submitTransformer SubmitTransformer
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (render.Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for every control of every instance, offering to add
// another instance after each one, then serializes the collected values.
// Prompted instances are the live form's instances; added ones come from
// the form's own add binding, so prefixes stay unique across the session.
func (r *Renderer) Render(ctx context.Context, form *replicate.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, render.ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNilDriver
	}
	if form == nil {
		return nil, render.ErrNilForm
	}

	state := NewState(opts.Values)

	for _, instance := range form.Instances() {
		if err := r.promptInstance(ctx, instance, state); err != nil {
			return nil, err
		}
	}

	for {
		if r.maxInstances > 0 && len(form.Instances()) >= r.maxInstances {
			break
		}
		more, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Add another?"})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		wrapper, err := form.Add()
		if err != nil {
			return nil, err
		}
		if err := r.promptInstance(ctx, wrapper, state); err != nil {
			return nil, err
		}
	}

	return r.serialize(form, state)
}

func (r *Renderer) promptInstance(ctx context.Context, instance *dom.Node, state *State) error {
	labels := labelIndex(instance)
	for _, control := range promptableControls(instance) {
		if err := r.promptControl(ctx, control, labels, state); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptControl(ctx context.Context, control *dom.Node, labels map[string]string, state *State) error {
	name := control.Attr("name")
	if name == "" {
		return nil
	}
	message := labels[control.Attr("id")]
	if message == "" {
		message = name
	}
	help := control.Attr("placeholder")
	rules := rulesFor(control)

	switch control.Tag {
	case "select":
		return r.promptSelect(ctx, control, name, message, help, state)
	case "textarea":
		return r.promptTextArea(ctx, control, name, message, help, rules, state)
	}

	switch control.Attr("type") {
	case "hidden":
		state.Set(name, control.Attr("value"))
		return nil
	case "submit", "button", "reset", "image":
		return nil
	case "checkbox":
		return r.promptCheckbox(ctx, control, name, message, help, state)
	case "password":
		return r.promptText(ctx, control, name, message, help, rules, state, true)
	default:
		return r.promptText(ctx, control, name, message, help, rules, state, false)
	}
}

func (r *Renderer) promptText(ctx context.Context, control *dom.Node, name, message, help string, rules fieldRules, state *State, secret bool) error {
	defaultVal, ok := state.Get(name)
	if !ok {
		defaultVal = control.Attr("value")
	}

	for {
		var response string
		var err error
		cfg := InputConfig{Message: message, Default: defaultVal, Help: help}
		if secret {
			response, err = r.driver.Password(ctx, cfg)
		} else {
			response, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}
		if err := rules.validate(response); err != nil {
			_ = r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", name, err))
			continue
		}
		state.Set(name, response)
		return nil
	}
}

func (r *Renderer) promptTextArea(ctx context.Context, control *dom.Node, name, message, help string, rules fieldRules, state *State) error {
	defaultVal, ok := state.Get(name)
	if !ok {
		defaultVal = nodeText(control)
	}

	for {
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: defaultVal,
			Help:    help,
		})
		if err != nil {
			return err
		}
		if err := rules.validate(response); err != nil {
			_ = r.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", name, err))
			continue
		}
		state.Set(name, response)
		return nil
	}
}

func (r *Renderer) promptCheckbox(ctx context.Context, control *dom.Node, name, message, help string, state *State) error {
	checked := control.HasAttr("checked")
	if v, ok := state.Get(name); ok {
		checked = v != ""
	}

	resp, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: message,
		Default: checked,
		Help:    help,
	})
	if err != nil {
		return err
	}
	if !resp {
		state.Delete(name)
		return nil
	}
	value := control.Attr("value")
	if value == "" {
		value = "on"
	}
	state.Set(name, value)
	return nil
}

func (r *Renderer) promptSelect(ctx context.Context, control *dom.Node, name, message, help string, state *State) error {
	options := selectOptions(control)
	if len(options) == 0 {
		return nil
	}

	if control.HasAttr("multiple") {
		var defaults []int
		for i, option := range options {
			if option.Selected {
				defaults = append(defaults, i)
			}
		}
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  optionLabels(options),
			Defaults: defaults,
			Help:     help,
		})
		if err != nil {
			return err
		}
		state.Delete(name)
		for _, idx := range indices {
			if idx >= 0 && idx < len(options) {
				state.Add(name, options[idx].Value)
			}
		}
		return nil
	}

	defaultIdx := -1
	if v, ok := state.Get(name); ok {
		defaultIdx = indexOfOptionValue(options, v)
	}
	if defaultIdx < 0 {
		for i, option := range options {
			if option.Selected {
				defaultIdx = i
				break
			}
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      optionLabels(options),
			DefaultIndex: defaultIdx,
			Help:         help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			_ = r.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", name))
			continue
		}
		state.Set(name, options[idx].Value)
		return nil
	}
}

func (r *Renderer) serialize(form *replicate.Form, state *State) ([]byte, error) {
	values := state.Values()
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}

	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(url.Values(values).Encode()), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		records := replicate.GroupSubmission(values, form.Template().PrefixSeed())
		if records == nil {
			records = []replicate.Record{}
		}
		return json.Marshal(records)
	}
}

type selectOption struct {
	Label    string
	Value    string
	Selected bool
}

func selectOptions(sel *dom.Node) []selectOption {
	var out []selectOption
	dom.Walk(sel, func(n *dom.Node) {
		if n.Kind != dom.Element || n.Tag != "option" {
			return
		}
		label := nodeText(n)
		value := label
		if n.HasAttr("value") {
			value = n.Attr("value")
		}
		if label == "" {
			label = value
		}
		out = append(out, selectOption{Label: label, Value: value, Selected: n.HasAttr("selected")})
	})
	return out
}

func optionLabels(options []selectOption) []string {
	out := make([]string, len(options))
	for i, option := range options {
		out[i] = option.Label
	}
	return out
}

func indexOfOptionValue(options []selectOption, value string) int {
	if value == "" {
		return -1
	}
	for i, option := range options {
		if option.Value == value {
			return i
		}
	}
	return -1
}

func promptableControls(instance *dom.Node) []*dom.Node {
	var out []*dom.Node
	dom.Walk(instance, func(n *dom.Node) {
		if n.Kind != dom.Element {
			return
		}
		switch n.Tag {
		case "input", "select", "textarea":
			out = append(out, n)
		}
	})
	return out
}

func labelIndex(instance *dom.Node) map[string]string {
	out := map[string]string{}
	dom.Walk(instance, func(n *dom.Node) {
		if n.Kind != dom.Element || n.Tag != "label" {
			return
		}
		target := n.Attr("for")
		if target == "" {
			return
		}
		if text := nodeText(n); text != "" {
			out[target] = text
		}
	})
	return out
}

func nodeText(n *dom.Node) string {
	var b strings.Builder
	dom.Walk(n, func(c *dom.Node) {
		if c.Kind == dom.Text {
			b.WriteString(c.Text)
		}
	})
	return strings.TrimSpace(b.String())
}

type fieldRules struct {
	required bool
	minLen   *int
	maxLen   *int
	pattern  *regexp.Regexp
}

func rulesFor(control *dom.Node) fieldRules {
	rules := fieldRules{required: control.HasAttr("required")}
	if v, ok := parseIntAttr(control, "minlength"); ok {
		rules.minLen = &v
	}
	if v, ok := parseIntAttr(control, "maxlength"); ok {
		rules.maxLen = &v
	}
	if expr := control.Attr("pattern"); expr != "" {
		if re, err := regexp.Compile(expr); err == nil {
			rules.pattern = re
		}
	}
	return rules
}

func parseIntAttr(control *dom.Node, key string) (int, bool) {
	raw := control.Attr(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}

func (r fieldRules) validate(value string) error {
	if r.required && strings.TrimSpace(value) == "" {
		return errors.New("required")
	}
	if r.minLen != nil && len(value) < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && len(value) > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}

func prettyPrint(values map[string][]string) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		for _, value := range values[key] {
			fmt.Fprintf(&b, "%s=%s\n", key, value)
		}
	}
	return b.String()
}
