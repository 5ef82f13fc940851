package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	for n := 1; n <= 6; n++ {
		c, ok := ParseCommand(n)
		assert.True(t, ok, n)
		assert.Equal(t, Command(n), c)
	}
	for _, n := range []int{0, 7, 9, -1} {
		_, ok := ParseCommand(n)
		assert.False(t, ok, n)
	}
	assert.Equal(t, "checkout", CommandCheckout.String())
	assert.Equal(t, "Command(9)", Command(9).String())
}
