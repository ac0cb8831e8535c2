package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/urfave/cli/v3"
)

const (
	iterationsKey = "iterations"
	maxWidthKey   = "max-width"
	formatKey     = "format"
	cpuProfileKey = "cpuprofile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Time signal emission while slots mutate the signal under the emitter",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  iterationsKey,
				Usage: "Emissions timed per scenario and width",
				Value: 100,
			},
			&cli.UintFlag{
				Name:  maxWidthKey,
				Usage: "Largest number of connections per signal",
				Value: 1_000,
			},
			&cli.StringFlag{
				Name:  formatKey,
				Usage: "Table style, pretty or ascii",
				Value: "pretty",
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("start cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	out, err := newReport(cmd.String(formatKey), os.Stdout)
	if err != nil {
		return err
	}

	iters := int(cmd.Uint(iterationsKey))
	maxWidth := int(cmd.Uint(maxWidthKey))

	start := time.Now()
	log.Printf("Starting signal benchmark, please wait...")
	defer func() {
		log.Printf("Finished signal benchmark in %v", time.Since(start))
	}()

	for _, sc := range scenarios {
		for _, w := range widths {
			if w > maxWidth {
				break
			}
			log.Printf("Running '%s' with %d connections", sc.name, w)
			res, err := measure(sc, w, iters)
			if err != nil {
				return fmt.Errorf("%s/%d: %w", sc.name, w, err)
			}
			out.add(res)
		}
	}
	out.render()
	return nil
}
