package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"music", "band"}, splitList("music,band"))
	assert.Equal(t, []string{"music", "band"}, splitList(" music , band "))
	assert.Equal(t, []string{"car"}, splitList("car,,"))
}
