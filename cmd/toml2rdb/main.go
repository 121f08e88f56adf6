// Package main provides the entry point for toml2rdb.
//
// toml2rdb streams a TOML document from stdin into a Redis RDB dump on
// stdout. Diagnostics go to stderr only; stdout carries nothing but the
// binary dump.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jo-migo/toml-to-rdb/config"
	"github.com/jo-migo/toml-to-rdb/format"
	"github.com/jo-migo/toml-to-rdb/rdb"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "toml2rdb",
		Usage: "stream a TOML file into rdb format",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "gzipped",
				Aliases: []string{"g"},
				Usage:   "whether the input stream is gzipped",
			},
			&cli.StringFlag{
				Name:    "compression",
				Aliases: []string{"c"},
				Usage:   "input compression: none, gzip, zstd, lz4, s2",
				Value:   "none",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	compression, err := inputCompression(c)
	if err != nil {
		return err
	}

	cfg := config.Load()

	dumper, err := rdb.NewDumper(
		rdb.WithVersion(cfg.Version),
		rdb.WithCompression(compression),
	)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	if err := dumper.Dump(os.Stdin, out); err != nil {
		return err
	}

	return out.Flush()
}

// inputCompression resolves the two flag spellings: --gzipped is the
// original short-hand and wins when set, --compression names any supported
// algorithm.
func inputCompression(c *cli.Context) (format.CompressionType, error) {
	if c.Bool("gzipped") {
		return format.CompressionGzip, nil
	}

	return format.ParseCompressionType(c.String("compression"))
}
