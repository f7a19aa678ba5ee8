package exercise

import (
	"context"

	"github.com/roach88/drills/internal/transcript"
)

const blockMessage = "Block being called in the method!"

// Block demonstrates handing a callback to a function that invokes it.
type Block struct{}

func (Block) Name() string      { return "block" }
func (Block) Summary() string   { return "pass a callback to a function and call it" }
func (Block) Interactive() bool { return false }

// Run implements Exercise.
func (b Block) Run(_ context.Context, env *Env) (*Outcome, error) {
	var err error
	TakeBlock(func() {
		err = env.Emit(transcript.KindResult, blockMessage)
	})
	if err != nil {
		return nil, err
	}
	return &Outcome{Exercise: b.Name(), Line: blockMessage}, nil
}

// TakeBlock calls block. A nil block is a no-op.
func TakeBlock(block func()) {
	if block == nil {
		return
	}
	block()
}
