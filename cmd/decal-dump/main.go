// Command decal-dump prints generated decal records as YAML
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stepclimb/config"
	"github.com/lixenwraith/stepclimb/decal"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (defaults when empty)")
	seed := flag.Int("seed", -1, "Decal seed override (negative keeps config)")
	first := flag.Int("from", 0, "First cell index")
	last := flag.Int("to", 4, "Last cell index")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seed >= 0 {
		cfg.Decal.GlobalSeed = int32(*seed)
	}

	gen, err := decal.New(cfg.Decal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := dump(os.Stdout, gen, *first, *last); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// dump writes records for cells [first,last] as a YAML sequence
func dump(w io.Writer, gen *decal.Generator, first, last int) error {
	if first < 0 || last < first {
		return fmt.Errorf("invalid cell range [%d,%d]", first, last)
	}

	records := make([]*decal.Record, 0, last-first+1)
	for i := first; i <= last; i++ {
		records = append(records, gen.GetOrCreate(i))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return enc.Close()
}
