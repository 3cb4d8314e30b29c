package systems

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/leondejong/platform-game/components"
	"github.com/leondejong/platform-game/config/frontend"
	"github.com/leondejong/platform-game/core"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const (
	settingsItem = "settings"
	snapshotItem = "quicksave"
)

var errWrongLevel = errors.New("quicksave belongs to another level")

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug bool `json:"debug"`
}

// SavedSnapshot is a quicksave together with the level it was taken in
type SavedSnapshot struct {
	Level    string        `json:"level"`
	Snapshot core.Snapshot `json:"snapshot"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "platform-game",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{Debug: s.Debug})
}

// ApplySavedSettings applies loaded settings to the game entity
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	GetOrCreateSettings(e).Debug = saved.Debug
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}

// UpdatePersistence handles quicksave and quickload.
func UpdatePersistence(e *ecs.ECS) {
	input := getOrCreateInput(e)
	save := GetAction(input, frontend.ActionQuickSave).JustPressed
	load := GetAction(input, frontend.ActionQuickLoad).JustPressed
	if !save && !load {
		return
	}

	sim := GetSimulation(e)
	levelEntry, ok := components.Level.First(e.World)
	if sim == nil || !ok {
		return
	}
	level := components.Level.Get(levelEntry).Name

	if save {
		if err := SaveSnapshot(level, sim.Sim.Snapshot()); err != nil {
			SetStatus(e, "Save failed")
			return
		}
		SetStatus(e, fmt.Sprintf("Saved at step %d", sim.Sim.Steps()))
		return
	}

	snap, err := LoadSnapshot(level)
	if err != nil {
		SetStatus(e, "Load failed")
		return
	}
	if snap == nil {
		SetStatus(e, "No quicksave")
		return
	}
	if err := sim.Sim.Restore(*snap); err != nil {
		log.Printf("Warning: Could not restore quicksave: %v", err)
		SetStatus(e, "Load failed")
		return
	}
	SetStatus(e, fmt.Sprintf("Loaded step %d", snap.Steps))
}

// SaveSnapshot stores a quicksave for level
func SaveSnapshot(level string, snap core.Snapshot) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := encodeSnapshot(level, snap)
	if err != nil {
		log.Printf("Warning: Could not serialize quicksave: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(snapshotItem, data); err != nil {
		log.Printf("Warning: Could not save quicksave: %v", err)
		return err
	}
	return nil
}

// LoadSnapshot returns the quicksave for level, or nil when there is none
func LoadSnapshot(level string) (*core.Snapshot, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(snapshotItem)
	if err != nil {
		log.Printf("Warning: Could not load quicksave: %v", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	snap, err := decodeSnapshot(data, level)
	if err != nil {
		log.Printf("Warning: Could not parse quicksave: %v", err)
		return nil, err
	}
	return snap, nil
}

func encodeSnapshot(level string, snap core.Snapshot) ([]byte, error) {
	return json.Marshal(SavedSnapshot{Level: level, Snapshot: snap})
}

func decodeSnapshot(data []byte, level string) (*core.Snapshot, error) {
	var saved SavedSnapshot
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	if saved.Level != level {
		return nil, fmt.Errorf("%w: %q", errWrongLevel, saved.Level)
	}
	return &saved.Snapshot, nil
}
