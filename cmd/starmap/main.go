// Command starmap builds, queries, and inspects the persisted graph from
// the command line, without going through the HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/azybler/evepath/pkg/cost"
	"github.com/azybler/evepath/pkg/ids"
	"github.com/azybler/evepath/pkg/rawmap"
	"github.com/azybler/evepath/pkg/routing"
	"github.com/azybler/evepath/pkg/search"
	"github.com/azybler/evepath/pkg/starmap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(os.Args[2:])
	case "path":
		err = runPath(os.Args[2:])
	case "near":
		err = runNear(os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "starmap:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: starmap <build|path|near|stats> [flags]")
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	source := fs.String("source", "", "path to the raw topology JSON file")
	output := fs.String("output", "data/starmap.bin", "path to write the persisted graph")
	maxDist := fs.Float64("max-jump-distance", 200.0, "maximum free-jump distance in light-years (exclusive)")
	minDist := fs.Float64("min-jump-distance", 0.0, "minimum free-jump distance in light-years (exclusive)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *source == "" {
		return fmt.Errorf("build: --source is required")
	}

	data, err := os.ReadFile(*source)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	raw, err := rawmap.Decode(data)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	g, err := starmap.Build(raw, starmap.BuildOptions{MaxJumpDistanceLY: *maxDist, MinJumpDistanceLY: *minDist})
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := starmap.WriteBinary(g, *output); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	fmt.Printf("build: wrote %d systems to %s\n", len(g.Systems), *output)
	return nil
}

func runPath(args []string) error {
	fs := flag.NewFlagSet("path", flag.ExitOnError)
	jumpDistance := fs.Uint("jump-distance", 200, "maximum jump-budget distance in light-years")
	optimize := fs.String("optimize", "distance", "fuel, distance, or hops")
	source := fs.String("source", envOrDefault("STARMAP_PATH", "data/starmap.bin"), "path to the persisted graph")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("path: usage: starmap path <start> <end> [flags]")
	}
	startExt, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return fmt.Errorf("path: invalid start id %q: %w", rest[0], err)
	}
	endExt, err := strconv.ParseUint(rest[1], 10, 32)
	if err != nil {
		return fmt.Errorf("path: invalid end id %q: %w", rest[1], err)
	}

	mode, ok := cost.ParseMode(*optimize)
	if !ok {
		return fmt.Errorf("path: --optimize must be one of fuel, distance, hops")
	}

	startID, err := ids.Pack(uint32(startExt))
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}
	endID, err := ids.Pack(uint32(endExt))
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}

	g, err := starmap.ReadBinary(*source)
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}

	result, err := routing.CalcPath(g, startID, endID, uint16(*jumpDistance), mode, nil, false, routing.DefaultCLITimeout)
	if err != nil {
		return fmt.Errorf("path: %w", err)
	}

	switch result.Outcome {
	case search.Found:
		fmt.Printf("found: cost=%d hops=%d\n", result.Cost, len(result.Path))
		for _, step := range result.Path {
			fmt.Printf("  %s %d ly -> %d (edge %d)\n", step.Kind, step.DistanceLY, step.Target, step.EdgeID)
		}
	case search.Timeout:
		fmt.Println("timeout")
	default:
		fmt.Println("notfound")
	}
	return nil
}

func runNear(args []string) error {
	fs := flag.NewFlagSet("near", flag.ExitOnError)
	source := fs.String("source", envOrDefault("STARMAP_PATH", "data/starmap.bin"), "path to the persisted graph")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("near: usage: starmap near <star> <max_distance> [flags]")
	}
	starExt, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return fmt.Errorf("near: invalid star id %q: %w", rest[0], err)
	}
	maxDist, err := strconv.ParseUint(rest[1], 10, 16)
	if err != nil {
		return fmt.Errorf("near: invalid max_distance %q: %w", rest[1], err)
	}

	starID, err := ids.Pack(uint32(starExt))
	if err != nil {
		return fmt.Errorf("near: %w", err)
	}

	g, err := starmap.ReadBinary(*source)
	if err != nil {
		return fmt.Errorf("near: %w", err)
	}

	steps, err := routing.Near(g, starID, uint16(maxDist))
	if err != nil {
		return fmt.Errorf("near: %w", err)
	}
	for _, step := range steps {
		fmt.Printf("%d ly -> %d (edge %d)\n", step.DistanceLY, step.Target, step.EdgeID)
	}
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	source := fs.String("source", envOrDefault("STARMAP_PATH", "data/starmap.bin"), "path to the persisted graph")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := starmap.ReadBinary(*source)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	report := g.Components()
	fmt.Printf("systems: %d\n", report.SystemCount)
	fmt.Printf("components: %d\n", report.ComponentCount)
	fmt.Printf("largest component: %d\n", report.LargestComponent)
	fmt.Printf("smallest component: %d\n", report.SmallestComponent)
	return nil
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

