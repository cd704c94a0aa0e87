package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/welf/reactive-signals/cmd/codegen/templates"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity signal adapters",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest adapter arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated package to",
				Value: "signals/typed/typed.go",
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
	log.Printf("Codegen for typed adapters started")
	defer func() {
		log.Printf("Codegen for typed adapters finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	out := cmd.String(outputKey)

	contents := templates.TypedGen(int(count))
	return os.WriteFile(out, []byte(contents), 0644)
}
