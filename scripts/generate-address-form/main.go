package main

import (
	"context"
	"fmt"
	"os"

	formrepeat "github.com/goliatone/go-formrepeat"
)

func main() {
	ctx := context.Background()

	const (
		blueprintPath = "examples/fixtures/address.yaml"
		rendererName  = "vanilla"
		outputPath    = "address-form.html"
	)

	blueprint, err := os.ReadFile(blueprintPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read blueprint: %v\n", err)
		os.Exit(1)
	}

	engine := formrepeat.New()
	req := formrepeat.Request{
		Blueprint: blueprint,
		AddCount:  2,
		Renderer:  rendererName,
	}
	req.RenderOptions.Title = "Mailing addresses"

	html, err := engine.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate surface: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated address surface HTML (%d bytes) → %s\n", len(html), outputPath)
}
