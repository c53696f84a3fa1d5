package codec_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/mosaic-engine/mosaic/codec"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestEncodeDecode(t *testing.T) {
	in := payload{Name: "crate", Count: 3}

	bz, err := codec.Encode(in)
	assert.NilError(t, err)
	assert.Equal(t, `{"name":"crate","count":3}`, string(bz))

	out, err := codec.Decode[payload](bz)
	assert.NilError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	_, err := codec.Decode[payload]([]byte(`{"name":`))
	assert.Assert(t, err != nil)
}
