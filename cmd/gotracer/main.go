package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"

	"github.com/marrach/gotracer/pkg/renderer"
	"github.com/marrach/gotracer/pkg/scene"
)

// Config holds the command-line configuration for a single render.
type Config struct {
	SceneName string
	Width     int
	Height    int
	Output    string
	Seed      int64
	Help      bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	log, err := renderer.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	sc, err := buildScene(config)
	if err != nil {
		log.Errorf("scene build failed: %v", err)
		os.Exit(1)
	}

	raster := renderer.Render(sc, log)

	if err := raster.WritePNG(config.Output); err != nil {
		log.Errorf("writing output: %v", err)
		os.Exit(1)
	}

	log.Infof("wrote %s", config.Output)
}

// buildScene resolves the requested built-in scene by name.
func buildScene(config Config) (*scene.Scene, error) {
	random := rand.New(rand.NewSource(config.Seed))

	switch config.SceneName {
	case "book-cover":
		return scene.NewBookCoverScene(config.Width, config.Height, random), nil
	case "cornell":
		return scene.NewCornellScene(config.Width, config.Height, random), nil
	case "showcase":
		return scene.NewMaterialShowcaseScene(config.Width, config.Height, random), nil
	case "motion-blur":
		return scene.NewMotionBlurScene(config.Width, config.Height, random), nil
	default:
		return nil, errors.Errorf("unknown scene %q (want one of: book-cover, cornell, showcase, motion-blur)", config.SceneName)
	}
}

func parseFlags() Config {
	var config Config
	flag.StringVar(&config.SceneName, "scene", "book-cover", "built-in scene to render (book-cover, cornell, showcase, motion-blur)")
	flag.IntVar(&config.Width, "width", 400, "output image width")
	flag.IntVar(&config.Height, "height", 225, "output image height")
	flag.StringVar(&config.Output, "out", "image.png", "output PNG path")
	flag.Int64Var(&config.Seed, "seed", 42, "seed for the scene-construction RNG")
	flag.BoolVar(&config.Help, "help", false, "show usage")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("gotracer: an offline Monte-Carlo path tracer")
	fmt.Println()
	flag.PrintDefaults()
}
