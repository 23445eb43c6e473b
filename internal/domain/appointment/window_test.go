package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithinWindow(t *testing.T) {
	assert.True(t, WithinWindow("09:00"), "apertura inclusive")
	assert.True(t, WithinWindow("19:00"), "cierre inclusive")
	assert.True(t, WithinWindow("13:45"))

	assert.False(t, WithinWindow("08:59"))
	assert.False(t, WithinWindow("19:01"))
	assert.False(t, WithinWindow("25:00"))
	assert.False(t, WithinWindow(""))
}
