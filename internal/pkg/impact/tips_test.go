package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTip(t *testing.T) {
	assert.Equal(t, EcoTips[0], NextTip(0))
	assert.Equal(t, EcoTips[1], NextTip(1))
	assert.Equal(t, EcoTips[3], NextTip(3))

	// Rotation wraps after the last tip
	assert.Equal(t, EcoTips[0], NextTip(len(EcoTips)))
	assert.Equal(t, EcoTips[2], NextTip(len(EcoTips)+2))

	// Negative counts fall back to the first tip
	assert.Equal(t, EcoTips[0], NextTip(-7))
}
