package types

// WorldStats is a point-in-time snapshot of a world's bookkeeping counters.
// ComponentTypeCount reflects the process-wide type registry, since the
// component index space is shared by every world in the process.
type WorldStats struct {
	ActiveEntities     int `json:"active_entities"`
	ReservedEntities   int `json:"reserved_entities"`
	FilterCount        int `json:"filter_count"`
	ComponentTypeCount int `json:"component_type_count"`
}
