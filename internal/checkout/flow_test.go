package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlow_StartsAtCartReview(t *testing.T) {
	f := NewFlow()
	assert.Equal(t, StepCartReview, f.Current())
}

func TestFlow_AdvanceWalksStepsAndStopsAtConfirmation(t *testing.T) {
	f := NewFlow()

	f.Advance()
	assert.Equal(t, StepShipping, f.Current())
	f.Advance()
	assert.Equal(t, StepPayment, f.Current())
	f.Advance()
	assert.Equal(t, StepConfirmation, f.Current())
	f.Advance()
	assert.Equal(t, StepConfirmation, f.Current())
}

func TestFlow_RetreatStopsAtCartReview(t *testing.T) {
	f := NewFlow()
	f.Advance()
	f.Advance()

	f.Retreat()
	assert.Equal(t, StepShipping, f.Current())
	f.Retreat()
	assert.Equal(t, StepCartReview, f.Current())
	f.Retreat()
	assert.Equal(t, StepCartReview, f.Current())
}

func TestFlow_JumpAheadRequiresCompletedPredecessor(t *testing.T) {
	f := NewFlow()

	assert.False(t, f.JumpTo(StepPayment))
	assert.Equal(t, StepCartReview, f.Current())

	f.Advance()
	f.Advance()
	// Shipping is completed, so payment is reachable again after going back.
	f.Retreat()
	f.Retreat()
	assert.True(t, f.JumpTo(StepPayment))
	assert.Equal(t, StepPayment, f.Current())
}

func TestFlow_JumpBackAlwaysAllowed(t *testing.T) {
	f := NewFlow()
	f.Advance()
	f.Advance()

	assert.True(t, f.JumpTo(StepCartReview))
	assert.Equal(t, StepCartReview, f.Current())
}

func TestFlow_RetreatKeepsCompletion(t *testing.T) {
	f := NewFlow()
	f.Advance()
	f.Retreat()

	// Cart review stayed completed, so shipping is still reachable.
	assert.True(t, f.JumpTo(StepShipping))
}

func TestFlow_Reset(t *testing.T) {
	f := NewFlow()
	f.Advance()
	f.Advance()

	f.Reset()
	assert.Equal(t, StepCartReview, f.Current())
	assert.False(t, f.JumpTo(StepPayment))
}
