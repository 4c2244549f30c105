package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed describes the activities loaded into the catalog at startup.
type Seed struct {
	Activities []SeedActivity `yaml:"activities"`
}

// SeedActivity is one catalog entry in a seed file.
type SeedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// DefaultSeed returns the built-in catalog embedded in the binary.
func DefaultSeed() Seed {
	seed, err := parseSeed(defaultSeed)
	if err != nil {
		// The embedded seed is fixed at build time; a parse failure here
		// is a programming error.
		panic(fmt.Sprintf("embedded seed invalid: %v", err))
	}
	return seed
}

// LoadSeedFile reads a YAML seed from path. An empty path selects the
// built-in seed.
func LoadSeedFile(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	seed, err := parseSeed(raw)
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

func parseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, err
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks the structural invariants the catalog relies on: unique
// names, positive capacities, unique roster emails, rosters within capacity.
func (s Seed) Validate() error {
	if len(s.Activities) == 0 {
		return fmt.Errorf("seed defines no activities")
	}

	names := make(map[string]struct{}, len(s.Activities))
	for _, entry := range s.Activities {
		if entry.Name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if _, dup := names[entry.Name]; dup {
			return fmt.Errorf("duplicate activity name %q", entry.Name)
		}
		names[entry.Name] = struct{}{}

		if entry.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be > 0", entry.Name)
		}
		if len(entry.Participants) > entry.MaxParticipants {
			return fmt.Errorf("activity %q: %d participants exceeds capacity %d",
				entry.Name, len(entry.Participants), entry.MaxParticipants)
		}

		seen := make(map[string]struct{}, len(entry.Participants))
		for _, email := range entry.Participants {
			if email == "" {
				return fmt.Errorf("activity %q: empty participant email", entry.Name)
			}
			if _, dup := seen[email]; dup {
				return fmt.Errorf("activity %q: duplicate participant %q", entry.Name, email)
			}
			seen[email] = struct{}{}
		}
	}
	return nil
}
