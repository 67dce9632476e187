package sets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scrapscramble/scrapscramble-go/internal/game"
	"github.com/scrapscramble/scrapscramble-go/internal/game/random"
)

// PoolFile is the YAML description of which cards a game uses.
//
//	sets:
//	  - Edge of Science
//	  - War Machines
//	exclude:
//	  - Orbital Mechanosphere
type PoolFile struct {
	Sets    []string `yaml:"sets"`
	Exclude []string `yaml:"exclude"`
}

// ParsePoolFile reads and parses a pool file.
func ParsePoolFile(path string) (*PoolFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePool(data)
}

// ParsePool parses pool YAML.
func ParsePool(data []byte) (*PoolFile, error) {
	var pf PoolFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse pool YAML: %w", err)
	}
	return &pf, nil
}

// Build resolves the file against the registry.
func (pf *PoolFile) Build(rng random.Source) (*game.CardPool, error) {
	exclude := make(map[string]bool, len(pf.Exclude))
	for _, name := range pf.Exclude {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("exclude: unknown card %q", name)
		}
		exclude[name] = true
	}
	return buildPool(rng, pf.Sets, exclude)
}
