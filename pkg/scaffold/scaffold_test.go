package scaffold_test

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formrepeat/pkg/dom"
	"github.com/goliatone/go-formrepeat/pkg/replicate"
	"github.com/goliatone/go-formrepeat/pkg/scaffold"
)

const addressSpec = `
openapi: 3.0.3
info:
  title: Address API
  version: 1.0.0
paths:
  /addresses:
    post:
      operationId: createAddress
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [email, street]
              properties:
                email:
                  type: string
                  format: email
                  example: you@example.com
                street:
                  type: string
                  maxLength: 120
                country:
                  type: string
                  enum: [us, uk, de]
                  default: us
                primary:
                  type: boolean
                  default: true
                floor:
                  type: integer
                  minimum: 0
                  maximum: 99
                notes:
                  type: string
                  maxLength: 2000
                internalRef:
                  type: string
                  readOnly: true
      responses:
        "201":
          description: created
`

func scaffoldAddress(t *testing.T) *dom.Node {
	t.Helper()

	container, err := scaffold.FromData(context.Background(), []byte(addressSpec), "createAddress")
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	return container
}

func TestFromData_FieldMapping(t *testing.T) {
	container := scaffoldAddress(t)

	email := container.FindByID("email")
	if email == nil {
		t.Fatal("email control not found")
	}
	if got := email.Attr("type"); got != "email" {
		t.Fatalf("email type mismatch: %q", got)
	}
	if got := email.Attr("placeholder"); got != "you@example.com" {
		t.Fatalf("placeholder mismatch: %q", got)
	}
	if !email.HasAttr("required") {
		t.Fatal("expected email to be required")
	}

	country := container.FindByID("country")
	if country == nil || country.Tag != "select" {
		t.Fatalf("expected a select for country, got %+v", country)
	}
	if got := len(country.Children); got != 3 {
		t.Fatalf("expected 3 country options, got %d", got)
	}
	if !country.Children[0].HasAttr("selected") {
		markup, _ := dom.RenderString(country)
		t.Fatalf("expected default option selected, got: %s", markup)
	}

	primary := container.FindByID("primary")
	if primary == nil || primary.Attr("type") != "checkbox" {
		t.Fatalf("expected a checkbox for primary, got %+v", primary)
	}
	if !primary.HasAttr("checked") {
		t.Fatal("expected default-true boolean to be checked")
	}

	floor := container.FindByID("floor")
	if floor == nil || floor.Attr("type") != "number" {
		t.Fatalf("expected a number input for floor, got %+v", floor)
	}
	if got := floor.Attr("min"); got != "0" {
		t.Fatalf("min mismatch: %q", got)
	}
	if got := floor.Attr("max"); got != "99" {
		t.Fatalf("max mismatch: %q", got)
	}
	if got := floor.Attr("step"); got != "1" {
		t.Fatalf("step mismatch: %q", got)
	}

	notes := container.FindByID("notes")
	if notes == nil || notes.Tag != "textarea" {
		t.Fatalf("expected a textarea for long string, got %+v", notes)
	}

	if got := container.FindByID("internalRef"); got != nil {
		t.Fatal("expected readOnly property to be skipped")
	}
}

func TestFromData_DeterministicOrderAndLabels(t *testing.T) {
	container := scaffoldAddress(t)

	var labels []string
	container.Walk(func(n *dom.Node) {
		if n.Kind == dom.Element && n.Tag == "label" {
			labels = append(labels, n.Attr("for"))
		}
	})
	want := []string{"country", "email", "floor", "notes", "primary", "street"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Fatalf("field order mismatch: %v", labels)
	}
}

func TestFromData_UnknownOperation(t *testing.T) {
	_, err := scaffold.FromData(context.Background(), []byte(addressSpec), "deleteAddress")
	if err == nil || !strings.Contains(err.Error(), "deleteAddress") {
		t.Fatalf("expected unknown-operation error, got %v", err)
	}
}

func TestContainerFromSchema_RejectsNonObject(t *testing.T) {
	schema := openapi3.NewStringSchema()
	if _, err := scaffold.ContainerFromSchema(schema); err == nil {
		t.Fatal("expected error for non-object schema")
	}
}

func TestScaffoldedContainer_Replicates(t *testing.T) {
	container := scaffoldAddress(t)

	form, err := replicate.New(container, replicate.WithPrefixSeed("addr"))
	if err != nil {
		t.Fatalf("assemble form: %v", err)
	}
	if _, err := form.Add(); err != nil {
		t.Fatalf("add: %v", err)
	}

	if form.Container().FindByID("addr_0-email") == nil {
		t.Fatal("first instance missing prefixed email control")
	}
	if form.Container().FindByID("addr_1-email") == nil {
		t.Fatal("second instance missing prefixed email control")
	}
}
