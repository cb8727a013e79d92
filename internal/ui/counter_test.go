package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloodnighttw/yap/internal/config"
	"github.com/bloodnighttw/yap/internal/runtime"
)

func TestCounter_IncrementDecrement(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.Init(nil))

	act, err := c.HandleEvent(runtime.KeyEvent{Rune: 'i'})
	require.NoError(t, err)
	assert.Equal(t, runtime.ActionRender{}, act)
	assert.Equal(t, 1, c.Count())

	_, _ = c.HandleEvent(runtime.KeyEvent{Rune: 'i'})
	_, _ = c.HandleEvent(runtime.KeyEvent{Rune: 'd'})
	assert.Equal(t, 1, c.Count())
}

func TestCounter_IgnoresOtherInput(t *testing.T) {
	c := NewCounter()
	require.NoError(t, c.Init(nil))

	act, err := c.HandleEvent(runtime.KeyEvent{Rune: 'x'})
	require.NoError(t, err)
	assert.Nil(t, act)

	act, err = c.HandleEvent(runtime.MouseEvent{Button: runtime.MouseLeft})
	require.NoError(t, err)
	assert.Nil(t, act)
	assert.Equal(t, 0, c.Count())
}

func TestCounter_KeysComeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Increment = "up"
	cfg.Keys.Decrement = "down"
	c := NewCounter()
	require.NoError(t, c.Init(cfg))

	_, _ = c.HandleEvent(runtime.KeyEvent{Code: runtime.KeyUp})
	_, _ = c.HandleEvent(runtime.KeyEvent{Code: runtime.KeyUp})
	assert.Equal(t, 2, c.Count())

	act, _ := c.HandleEvent(runtime.KeyEvent{Rune: 'i'})
	assert.Nil(t, act, "default binding no longer applies")
}
