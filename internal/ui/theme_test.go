package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[----------]", ProgressBar(0, 10))
	assert.Equal(t, "[#####-----]", ProgressBar(50, 10))
	assert.Equal(t, "[##########]", ProgressBar(150, 10))
	assert.Equal(t, "[---]", ProgressBar(-5, 1))
}
