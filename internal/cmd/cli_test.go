package cmd

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/KEYDEC/layout"
	"github.com/Alia5/KEYDEC/scancode"
)

func TestParseHexBytes(t *testing.T) {
	data, err := parseHexBytes([]string{"1e", "0x9E", "e0,48"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1E, 0x9E, 0xE0, 0x48}, data)

	_, err = parseHexBytes([]string{"zz"})
	assert.Error(t, err)

	_, err = parseHexBytes([]string{"100"})
	assert.Error(t, err, "values above one byte are rejected")
}

func TestDecoderConfig(t *testing.T) {
	cfg := DecoderConfig{Set: 1, Layout: "us"}
	assert.IsType(t, &scancode.Set1Decoder{}, cfg.NewDecoder())
	assert.Equal(t, layout.ControlIgnored, cfg.ControlHandling())

	cfg = DecoderConfig{Set: 2, Layout: "uk", MapCtrl: true}
	assert.IsType(t, &scancode.Set2Decoder{}, cfg.NewDecoder())
	assert.Equal(t, layout.ControlMapsLetters, cfg.ControlHandling())

	lay, err := cfg.ResolveLayout()
	require.NoError(t, err)
	assert.Equal(t, "uk", lay.Name())

	cfg.Layout = "dvorak"
	_, err = cfg.ResolveLayout()
	assert.Error(t, err)
}

func TestConfigTemplate(t *testing.T) {
	root := buildMapFromStruct(reflect.TypeOf(Decode{}))

	// Embedded decoder flags are flattened; positional args are excluded.
	assert.Equal(t, int64(1), root["set"])
	assert.Equal(t, "us", root["layout"])
	assert.Equal(t, false, root["mapCtrl"])
	assert.Contains(t, root, "file")
	assert.NotContains(t, root, "bytes")
}
