package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bicicolombia/taller-scheduler/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	// confirmar: solo desde pendiente
	assert.True(t, CanTransition(StatusPending, ActionConfirm))
	assert.False(t, CanTransition(StatusConfirmed, ActionConfirm))
	assert.False(t, CanTransition(StatusCompleted, ActionConfirm))
	assert.False(t, CanTransition(StatusCancelled, ActionConfirm))

	// cancelar: desde cualquier estado no cancelado
	assert.True(t, CanTransition(StatusPending, ActionCancel))
	assert.True(t, CanTransition(StatusConfirmed, ActionCancel))
	assert.True(t, CanTransition(StatusCompleted, ActionCancel))
	assert.False(t, CanTransition(StatusCancelled, ActionCancel))

	// reprogramar: incluso desde completed, nunca desde cancelled
	assert.True(t, CanTransition(StatusPending, ActionReschedule))
	assert.True(t, CanTransition(StatusConfirmed, ActionReschedule))
	assert.True(t, CanTransition(StatusCompleted, ActionReschedule))
	assert.False(t, CanTransition(StatusCancelled, ActionReschedule))
}

func TestApply(t *testing.T) {
	next, err := Apply(StatusPending, ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next)

	next, err = Apply(StatusConfirmed, ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, next)

	next, err = Apply(StatusCompleted, ActionReschedule)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, next, "reprogramar siempre vuelve a pendiente")
}

func TestApplyRejectsInvalidTransition(t *testing.T) {
	_, err := Apply(StatusCancelled, ActionReschedule)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = Apply(StatusConfirmed, ActionConfirm)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(false))
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusCompleted))
	assert.False(t, ValidStatus(Status("archived")))
}
