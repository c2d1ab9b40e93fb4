package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	formrepeat "github.com/goliatone/go-formrepeat"
)

func main() {
	input := flag.String("input", "", "seed source path (stdin if \"-\")")
	format := flag.String("format", "html", "input format: html, blueprint, or openapi")
	operation := flag.String("operation", "", "operation ID (openapi format only)")
	seed := flag.String("seed", "", "identifier prefix seed")
	adds := flag.Int("adds", 0, "add-affordance activations after the initial instance")
	renderer := flag.String("renderer", "vanilla", "renderer to use")
	title := flag.String("title", "", "surface title")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	req := formrepeat.Request{
		Seed:     *seed,
		AddCount: *adds,
		Renderer: *renderer,
	}
	req.RenderOptions.Title = *title

	switch *format {
	case "html":
		req.Markup = string(data)
	case "blueprint":
		req.Blueprint = data
	case "openapi":
		if *operation == "" {
			log.Fatal("openapi format requires -operation")
		}
		req.OpenAPI = data
		req.OperationID = *operation
	default:
		log.Fatalf("unknown format %q (want html, blueprint, or openapi)", *format)
	}

	engine := formrepeat.New()
	out, err := engine.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate surface: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Surface written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func readInput(path string) ([]byte, error) {
	switch path {
	case "":
		return nil, fmt.Errorf("-input is required")
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(path)
	}
}
