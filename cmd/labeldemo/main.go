// Command labeldemo renders the labels of a TOML scene.
//
//	labeldemo -scene testdata/scene.toml -o labels.png
//	labeldemo -scene testdata/scene.toml -backend recorder -o -
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/render"
	"github.com/gogpu/maplabel/render/raster"
	_ "github.com/gogpu/maplabel/render/recorder"
	"github.com/gogpu/maplabel/style"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("labeldemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "scene file (TOML)")
		stylePath = fs.String("styles", "", "extra style sheet (TOML or YAML)")
		backend   = fs.String("backend", "raster", fmt.Sprintf("drawing backend %v", render.Backends()))
		output    = fs.String("o", "labels.png", "output file, - for stdout")
		verbose   = fs.Bool("v", false, "log placement decisions")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		return fmt.Errorf("labeldemo: -scene is required")
	}
	if *verbose {
		maplabel.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer maplabel.SetLogger(nil)
	}

	var extra style.Sheet
	if *stylePath != "" {
		var err error
		if extra, err = style.LoadFile(*stylePath); err != nil {
			return err
		}
	}
	scene, err := LoadScene(*scenePath, extra)
	if err != nil {
		return err
	}

	w, h := scene.DeviceSize()
	var b render.Backend
	if *backend == "raster" && !scene.Background.IsTransparent() {
		b, err = raster.New(w, h, raster.WithBackground(scene.Background))
	} else {
		b, err = render.NewBackend(*backend, w, h)
	}
	if err != nil {
		return err
	}

	engine := render.NewEngine(render.WithMetrics(b))
	if err := engine.RenderAll(b, scene.Features, scene.View); err != nil {
		return fmt.Errorf("labeldemo: render: %w", err)
	}

	if *output == "-" {
		_, err = b.WriteTo(stdout)
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("%d features rendered to %s (%dx%d)", len(scene.Features), *output, w, h)
	return nil
}
