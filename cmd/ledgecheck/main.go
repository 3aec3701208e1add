package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/physics"
	"github.com/milk9111/ledgeclimb/prefabs"
)

// ledgecheck reports, for every block face in a level, the band of actor
// heights from which the ledge above it can be grabbed.
func main() {
	levelName := flag.String("level", "level.yaml", "level spec in prefabs/")
	step := flag.Float64("step", 1, "height sampling step")
	verbose := flag.Bool("v", false, "log every probe")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *step <= 0 {
		log.Fatal("ledgecheck: -step must be positive")
	}

	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := charSpec.Config()
	if err != nil {
		log.Fatal(err)
	}
	params := charSpec.MotorParams()

	levelSpec, err := prefabs.LoadLevelSpec(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	world := physics.NewWorld()
	if err := levelSpec.Build(world); err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOX\tFACE\tFROM Z\tTO Z\tGRAB")

	for _, b := range levelSpec.Boxes {
		faces := []struct {
			name    string
			x       float64
			forward mgl64.Vec3
		}{
			{"left", b.MinX - params.Radius, mgl64.Vec3{1, 0, 0}},
			{"right", b.MaxX + params.Radius, mgl64.Vec3{-1, 0, 0}},
		}
		for _, f := range faces {
			lo, hi := math.Inf(1), math.Inf(-1)
			var grab mgl64.Vec3
			for z := b.MinZ; z <= b.MaxZ; z += *step {
				pos := mgl64.Vec3{f.x, 0, z}
				g, ok := character.ProbeLedge(world, pos, f.forward, cfg)
				logger.Debug("probe", "box", b.Name, "face", f.name, "z", z, "ok", ok)
				if !ok {
					continue
				}
				lo, hi = math.Min(lo, z), math.Max(hi, z)
				grab = g
			}
			if math.IsInf(lo, 1) {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\t(%.0f, %.0f)\n", b.Name, f.name, lo, hi, grab.X(), grab.Z())
		}
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
