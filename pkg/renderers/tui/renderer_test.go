package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/render"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	passwords    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func buildForm(t *testing.T, markup string, fns ...replicate.OptionFn) *replicate.Form {
	t.Helper()

	container := dom.FirstElement(dom.MustParseFragment(markup))
	if container == nil {
		t.Fatal("expected a container element")
	}
	form, err := replicate.New(container, fns...)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func TestRender_PromptsInstancesAndAdds(t *testing.T) {
	form := buildForm(t, `<div id="contacts">`+
		`<label for="email">Email</label><input id="email" name="email" type="email">`+
		`<select id="kind" name="kind"><option value="home">Home</option><option value="work">Work</option></select>`+
		`</div>`)

	driver := &stubDriver{
		inputs:    []string{"ada@example.com", "bob@example.com"},
		selectIdx: []int{0, 1},
		confirm:   []bool{true, false},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var records []replicate.Record
	if err := json.Unmarshal(out, &records); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Values["email"]; len(got) != 1 || got[0] != "ada@example.com" {
		t.Fatalf("record 0 email mismatch: %v", got)
	}
	if got := records[0].Values["kind"]; len(got) != 1 || got[0] != "home" {
		t.Fatalf("record 0 kind mismatch: %v", got)
	}
	if got := records[1].Values["email"]; len(got) != 1 || got[0] != "bob@example.com" {
		t.Fatalf("record 1 email mismatch: %v", got)
	}
	if got := records[1].Values["kind"]; len(got) != 1 || got[0] != "work" {
		t.Fatalf("record 1 kind mismatch: %v", got)
	}
	if len(form.Instances()) != 2 {
		t.Fatalf("expected the add prompt to append an instance, got %d", len(form.Instances()))
	}
}

func TestRender_ValidationRetries(t *testing.T) {
	form := buildForm(t, `<div id="contacts"><input id="email" name="email" type="email" required></div>`)

	driver := &stubDriver{
		inputs:  []string{"", "ada@example.com"},
		confirm: []bool{false},
	}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(driver.infoMessages) == 0 {
		t.Fatalf("expected validation message for first empty input")
	}
	if got := string(out); got != "0-email=ada@example.com\n" {
		t.Fatalf("unexpected pretty output: %q", got)
	}
}

func TestRender_HiddenAndCheckboxControls(t *testing.T) {
	form := buildForm(t, `<div id="prefs">`+
		`<input id="token" name="token" type="hidden" value="abc">`+
		`<input id="subscribe" name="subscribe" type="checkbox" value="yes">`+
		`</div>`)

	driver := &stubDriver{
		confirm: []bool{true, false}, // checkbox yes, no more instances
	}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "0-subscribe=yes&0-token=abc" {
		t.Fatalf("unexpected form output: %q", got)
	}
}

func TestRender_MaxInstancesSkipsAddPrompt(t *testing.T) {
	form := buildForm(t, `<div id="contacts"><input id="email" name="email" type="email"></div>`)

	driver := &stubDriver{
		inputs: []string{"ada@example.com"},
	}
	r, err := New(WithPromptDriver(driver), WithMaxInstances(1))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.confirmPos != 0 {
		t.Fatalf("expected no add prompt at the instance cap")
	}
	if !strings.Contains(string(out), "ada@example.com") {
		t.Fatalf("expected collected value in output: %s", out)
	}
}

func TestRender_SeededPrefixesGroupRecords(t *testing.T) {
	form := buildForm(t, `<div id="contacts"><input id="email" name="email" type="email"></div>`,
		replicate.WithPrefixSeed("addr"))

	driver := &stubDriver{
		inputs:  []string{"ada@example.com"},
		confirm: []bool{false},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var records []replicate.Record
	if err := json.Unmarshal(out, &records); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(records) != 1 || records[0].Index != 0 {
		t.Fatalf("expected one record for instance 0, got %+v", records)
	}
	if got := records[0].Values["email"]; len(got) != 1 || got[0] != "ada@example.com" {
		t.Fatalf("seeded record email mismatch: %v", got)
	}
}

func TestRender_NilContext(t *testing.T) {
	form := buildForm(t, `<div id="contacts"><input id="email" name="email"></div>`)

	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	var nilCtx context.Context
	if _, err := r.Render(nilCtx, form, render.RenderOptions{}); !errors.Is(err, render.ErrNilContext) {
		t.Fatalf("expected ErrNilContext, got %v", err)
	}
}
