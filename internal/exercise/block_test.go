package exercise

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/drills/internal/transcript"
)

func TestTakeBlock(t *testing.T) {
	calls := 0
	TakeBlock(func() { calls++ })
	assert.Equal(t, 1, calls)

	assert.NotPanics(t, func() { TakeBlock(nil) })
}

func TestBlock_Run(t *testing.T) {
	var out bytes.Buffer
	session := transcript.NewSession("s", "block")
	env := &Env{Out: &out, Recorder: session}

	outcome, err := Block{}.Run(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "Block being called in the method!", outcome.Line)
	assert.Equal(t, "Block being called in the method!\n", out.String())
	assert.Equal(t, "Block being called in the method!", session.Result)
}
