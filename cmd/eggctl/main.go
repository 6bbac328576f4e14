package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	egg "Ovoid/internal/calc/egg"
	preset "Ovoid/internal/preset"
)

// eggctl generates a binary STL egg model offline, without the server.
// Parameters come from flags or from a species preset in the CSV table.
func main() {
	var (
		length  = flag.Float64("length", 58, "egg length L in mm")
		width   = flag.Float64("width", 40, "egg maximum width B in mm")
		dl4     = flag.Float64("dl4", 25, "diameter at the quarter-length point in mm")
		shape   = flag.Float64("n", 2, "shape exponent")
		species = flag.String("preset", "", "species preset name (overrides the shape flags)")
		presets = flag.String("presets-file", "data/species.csv", "species presets CSV")
		density = flag.Float64("density", 1.031, "density in g/cm3 for the mass estimate")
		out     = flag.String("o", "egg_model.stl", "output STL path")
	)
	flag.Parse()

	in := egg.Input{
		LengthMM:     *length,
		WidthMM:      *width,
		DiameterL4MM: *dl4,
		ShapeN:       *shape,
	}
	if *species != "" {
		store, err := preset.Load(*presets)
		if err != nil {
			log.Fatalf("preset load error: %v", err)
		}
		p, ok := store.Get(*species)
		if !ok {
			log.Fatalf("unknown species %q; known: %v", *species, store.Names())
		}
		in = p
	}

	v, err := egg.VolumeCM3(in)
	if err != nil {
		log.Fatalf("volume error: %v", err)
	}
	m, err := egg.BuildMesh(in)
	if err != nil {
		log.Fatalf("mesh error: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := egg.WriteSTL(f, m); err != nil {
		log.Fatalf("STL write error: %v", err)
	}

	fmt.Printf("wrote %s: %d vertices, %d faces\n", *out, m.VertexCount(), m.FaceCount())
	fmt.Printf("volume %.2f cm3, mass %.2f g at %.3f g/cm3\n", v, v*(*density), *density)
}
