package mosaic

import (
	"encoding/json"

	"github.com/mosaic-engine/mosaic/codec"
	"github.com/mosaic-engine/mosaic/types"
)

// DebugState dumps every live entity with its component values encoded as
// JSON, keyed by component type name. Intended for debug tooling and
// external serialization collaborators; the core never consumes it.
func (w *World) DebugState() (types.DebugStateResponse, error) {
	live := w.table.LiveHandles()
	out := make(types.DebugStateResponse, 0, len(live))
	for _, h := range live {
		rec, err := w.table.Record(h)
		if err != nil {
			return nil, err
		}
		comps := make(map[string]json.RawMessage, rec.ComponentCount())
		for i := 0; i < rec.ComponentCount(); i++ {
			tid, slot := rec.PairAt(i)
			bz, err := codec.Encode(w.pools[tid].Value(slot))
			if err != nil {
				return nil, err
			}
			comps[componentName(tid)] = bz
		}
		out = append(out, types.DebugStateElement{
			ID:         h.ID,
			Gen:        h.Gen,
			Components: comps,
		})
	}
	return out, nil
}

// StatsJSON returns the stats snapshot encoded with the world codec.
func (w *World) StatsJSON() ([]byte, error) {
	return codec.Encode(w.Stats())
}
