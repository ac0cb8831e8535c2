package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/turnsignal/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "arity"
	outKey      = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed Signal0..SignalN wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest number of slot arguments to generate a wrapper for",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the wrappers to",
				Value: "signals/arity_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signals started !")
	defer func() {
		log.Printf("Codegen for signals finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outKey)
	log.Printf("Max arity: %d", maxArity)

	contents, err := format.Source([]byte(templates.SignalsGen(maxArity)))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}
