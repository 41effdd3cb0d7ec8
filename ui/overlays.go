package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayStars    OverlayID = "stars"
	OverlayTitle    OverlayID = "title"
	OverlayControls OverlayID = "controls"
	OverlayStats    OverlayID = "stats"
	OverlayPerf     OverlayID = "perf"
	OverlayKeys     OverlayID = "keys"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "S", "V")
	Category    string      // Grouping (e.g., "scene", "debug")
	Default     bool        // Enabled at startup
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
	order       []OverlayID // Maintains insertion order for display
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	// Scene
	r.Register(OverlayDescriptor{
		ID:          OverlayStars,
		Name:        "Starfield",
		Description: "Background star shell",
		Key:         rl.KeyS,
		KeyLabel:    "S",
		Category:    "scene",
		Default:     true,
	})

	// Interface
	r.Register(OverlayDescriptor{
		ID:          OverlayTitle,
		Name:        "Title",
		Description: "Title card in the top-left corner",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "interface",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayControls,
		Name:        "Configuration",
		Description: "Shape and color panel",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Category:    "interface",
		Default:     true,
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayKeys,
		Name:        "Key Legend",
		Description: "List of overlay toggles",
		Key:         rl.KeyH,
		KeyLabel:    "H",
		Category:    "interface",
	})

	// Debug
	r.Register(OverlayDescriptor{
		ID:          OverlayStats,
		Name:        "Swarm Stats",
		Description: "Particle count, expansion and FPS",
		Key:         rl.KeyD,
		KeyLabel:    "D",
		Category:    "debug",
		Exclusive:   []OverlayID{OverlayPerf},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Frame Timing",
		Description: "Per-phase frame time breakdown",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "debug",
		Exclusive:   []OverlayID{OverlayStats},
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.order = append(r.order, desc.ID)
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	newState := !r.enabled[id]
	r.SetEnabled(id, newState)
	return newState
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled

	// If enabling, disable exclusive overlays
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}
