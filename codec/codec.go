// Package codec provides the JSON encoding used for component values in
// debug dumps and stats snapshots.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

func Decode[T any](bz []byte) (T, error) {
	val := new(T)
	if err := json.Unmarshal(bz, val); err != nil {
		return *val, eris.Wrap(err, "decode")
	}
	return *val, nil
}

func Encode(val any) ([]byte, error) {
	bz, err := json.Marshal(val)
	if err != nil {
		return nil, eris.Wrap(err, "encode")
	}
	return bz, nil
}
