package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
[activities."Chess Club"]
description = "Learn chess"
schedule = "Fridays, 3:30 PM - 5:00 PM"
max_participants = 12
participants = ["michael@mergington.edu", "daniel@mergington.edu"]

[activities."Robotics Club"]
description = "Build robots"
schedule = "Mondays, 3:30 PM - 5:00 PM"
max_participants = 8
participants = []
`)

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed, 2)

	chess := seed["Chess Club"]
	require.Equal(t, "Learn chess", chess.Description)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)

	require.Empty(t, seed["Robotics Club"].Participants)
}

func TestLoadSeedFileDuplicateParticipant(t *testing.T) {
	path := writeSeedFile(t, `
[activities."Chess Club"]
description = "Learn chess"
schedule = "Fridays"
max_participants = 12
participants = ["michael@mergington.edu", "michael@mergington.edu"]
`)

	_, err := LoadSeedFile(path)
	require.ErrorContains(t, err, "duplicate participant")
}

func TestLoadSeedFileNegativeCapacity(t *testing.T) {
	path := writeSeedFile(t, `
[activities."Chess Club"]
description = "Learn chess"
schedule = "Fridays"
max_participants = -1
participants = []
`)

	_, err := LoadSeedFile(path)
	require.ErrorContains(t, err, "max_participants")
}

func TestLoadSeedFileEmptyCatalogue(t *testing.T) {
	path := writeSeedFile(t, ``)

	_, err := LoadSeedFile(path)
	require.ErrorContains(t, err, "no activities")
}

func TestLoadSeedFileInvalidTOML(t *testing.T) {
	path := writeSeedFile(t, `not valid [toml`)

	_, err := LoadSeedFile(path)
	require.Error(t, err)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
