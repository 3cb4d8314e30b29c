package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEncodingRoundTrip(t *testing.T) {
	e := newTestGame(t)
	sim := GetSimulation(e)
	for i := 0; i < 30; i++ {
		sim.Sim.Step()
	}
	snap := sim.Sim.Snapshot()

	data, err := encodeSnapshot("builtin", snap)
	require.NoError(t, err)

	decoded, err := decodeSnapshot(data, "builtin")
	require.NoError(t, err)
	assert.Equal(t, snap, *decoded)

	_, err = decodeSnapshot(data, "other.tmx")
	assert.ErrorIs(t, err, errWrongLevel)

	_, err = decodeSnapshot([]byte("{"), "builtin")
	assert.Error(t, err)
}

func TestPersistenceWithoutStorageIsNoop(t *testing.T) {
	e := newTestGame(t)

	settings, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, settings)

	snap, err := LoadSnapshot("builtin")
	assert.NoError(t, err)
	assert.Nil(t, snap)

	assert.NoError(t, SaveSnapshot("builtin", GetSimulation(e).Sim.Snapshot()))
}

func TestApplySavedSettings(t *testing.T) {
	e := newTestGame(t)
	assert.False(t, GetOrCreateSettings(e).Debug)

	ApplySavedSettings(e, nil)
	assert.False(t, GetOrCreateSettings(e).Debug)

	ApplySavedSettings(e, &SavedSettings{Debug: true})
	assert.True(t, GetOrCreateSettings(e).Debug)
}
