package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howells/stacksheet/internal/config"
)

func TestParseSnapFlag(t *testing.T) {
	specs := parseSnapFlag("0.25, 0.5,300px,1")
	require.Len(t, specs, 4)
	assert.Equal(t, 0.25, specs[0])
	assert.Equal(t, 0.5, specs[1])
	assert.Equal(t, "300px", specs[2])
	assert.Equal(t, 1.0, specs[3])
}

func TestParseSnapFlag_SkipsEmptyEntries(t *testing.T) {
	specs := parseSnapFlag("0.5,,1,")
	assert.Len(t, specs, 2)
}

func TestApplyDemoFlags(t *testing.T) {
	cmd := NewDemoCmd()
	require.NoError(t, cmd.Flags().Set("side", "right"))
	require.NoError(t, cmd.Flags().Set("snap", "0.5,1"))
	require.NoError(t, cmd.Flags().Set("max-depth", "3"))

	var opts config.Options
	applyDemoFlags(cmd, &opts)

	require.NotNil(t, opts.Side)
	assert.Equal(t, config.SideRight, opts.Side.Value)
	assert.Len(t, opts.SnapPoints, 2)
	require.NotNil(t, opts.MaxDepth)
	assert.Equal(t, 3, *opts.MaxDepth)
	assert.Nil(t, opts.SnapToSequentialPoints)
}

func TestApplyDemoFlags_InvalidSideIgnored(t *testing.T) {
	cmd := NewDemoCmd()
	require.NoError(t, cmd.Flags().Set("side", "diagonal"))

	var opts config.Options
	applyDemoFlags(cmd, &opts)

	assert.Nil(t, opts.Side)
}
