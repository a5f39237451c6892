package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/martin-hlavaty-kyn/skills-getting-started-with-github-copilot/internal/domain"
)

type seedFile struct {
	Activities map[string]seedActivity `toml:"activities"`
}

type seedActivity struct {
	Description     string   `toml:"description"`
	Schedule        string   `toml:"schedule"`
	MaxParticipants int      `toml:"max_participants"`
	Participants    []string `toml:"participants"`
}

// LoadSeedFile parses a TOML catalogue and validates the roster invariants
// before the repository is built from it. The file replaces the built-in seed
// entirely; it cannot extend it.
func LoadSeedFile(path string) (map[string]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var parsed seedFile
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(parsed.Activities) == 0 {
		return nil, fmt.Errorf("seed file %s defines no activities", path)
	}

	seed := make(map[string]domain.Activity, len(parsed.Activities))
	for name, entry := range parsed.Activities {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("seed file %s contains an activity with a blank name", path)
		}
		if entry.MaxParticipants < 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be >= 0", name)
		}

		seen := make(map[string]struct{}, len(entry.Participants))
		for _, email := range entry.Participants {
			if strings.TrimSpace(email) == "" {
				return nil, fmt.Errorf("activity %q: blank participant email", name)
			}
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = struct{}{}
		}

		seed[name] = domain.Activity{
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    entry.Participants,
		}
	}
	return seed, nil
}
