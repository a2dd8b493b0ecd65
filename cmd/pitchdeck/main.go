// Command pitchdeck builds the TAGO Leap pitch deck.
//
// With no flags or environment it builds the first revision to its fixed
// output path and prints the saved location.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/pitchdeck"
	"github.com/tsawler/pitchdeck/config"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}

// run builds and saves the deck described by cfg, printing the confirmation
// to out and logs to errOut.
func run(cfg config.Config, out, errOut io.Writer) error {
	logger := cfg.Logger(errOut)

	d := pitchdeck.New(cfg.Version).
		Logger(logger).
		Output(cfg.Output).
		Thumbnail(cfg.Thumbnail)
	if cfg.PreviewDir != "" {
		d = d.Preview(cfg.PreviewDir)
	}
	if cfg.Outline != "" {
		d = d.Outline(cfg.Outline)
	}
	if cfg.Proof {
		d = d.Proof()
	}

	res, warnings, err := d.Save()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.String())
	}

	fmt.Fprintln(out, res.Summary())
	return nil
}
