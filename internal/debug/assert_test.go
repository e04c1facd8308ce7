package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "never") })

	if Enabled {
		assert.Panics(t, func() { Assert(false, "value %d", 1) })
	} else {
		assert.NotPanics(t, func() { Assert(false, "value %d", 1) })
	}
}
