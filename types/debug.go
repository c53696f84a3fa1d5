package types

import "encoding/json"

// DebugStateElement is one live entity with its component values encoded as
// raw JSON, keyed by component type name.
type DebugStateElement struct {
	ID         EntityID                   `json:"id"`
	Gen        Generation                 `json:"gen"`
	Components map[string]json.RawMessage `json:"components"`
}

// DebugStateResponse is the full dump of a world's live entities.
type DebugStateResponse []DebugStateElement
