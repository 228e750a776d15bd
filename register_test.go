package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRegister_ClaimAndRelease(t *testing.T) {
	r := NewStateRegister(StateHovered)
	a := NewComponent(WithName("a"))
	b := NewComponent(WithName("b"))

	require.True(t, r.Claim(a, true))
	assert.False(t, r.Claim(a, true), "claiming twice changes nothing")
	assert.True(t, r.Holds(a))

	assert.False(t, r.Claim(b, false), "only the holder can release")
	assert.True(t, r.Claim(a, false))
	assert.Nil(t, r.Holder())
	assert.False(t, r.Holds(nil))
}

func TestStateRegister_EvictionIsForced(t *testing.T) {
	s := NewScreen(nil, WithDisplaySize(100, 100))
	a := NewComponent(WithName("a"))
	b := NewComponent(WithName("b"))
	s.Add(a, b)

	var forced []bool
	Subscribe(a, func(e *StateChange) {
		if e.Kind == StateHovered && !e.New {
			forced = append(forced, e.Forced)
			e.Cancel()
		}
	})

	a.SetHovered(true)
	require.Equal(t, Element(a), s.Hovered())

	a.SetHovered(false)
	assert.True(t, a.IsHovered(), "a plain release can be vetoed")

	b.SetHovered(true)
	assert.False(t, a.IsHovered(), "eviction ignores the veto")
	assert.True(t, b.IsHovered())
	assert.Equal(t, Element(b), s.Hovered())
	assert.Equal(t, []bool{false, true}, forced)
}

func TestStateRegister_OneHolderPerState(t *testing.T) {
	s := NewScreen(nil, WithDisplaySize(100, 100))
	a := NewComponent(WithName("a"))
	b := NewComponent(WithName("b"))
	s.Add(a, b)

	a.SetHovered(true)
	b.SetFocused(true)
	assert.Equal(t, Element(a), s.Hovered())
	assert.Equal(t, Element(b), s.Focused())

	a.SetFocused(true)
	assert.False(t, b.IsFocused())
	assert.True(t, a.IsHovered(), "focus changes leave hover alone")
}

func TestStateRegister_Clear(t *testing.T) {
	s := NewScreen(nil, WithDisplaySize(100, 100))
	a := NewComponent(WithName("a"))
	s.Add(a)
	a.SetFocused(true)

	var log stateLog
	log.watch(a)
	s.focus.Clear()
	s.focus.Clear()

	assert.False(t, a.IsFocused())
	assert.Nil(t, s.Focused())
	assert.Equal(t, []string{"a focused true->false"}, log.changes)
}

func TestStateRegister_ReleaseAfterFlagCleared(t *testing.T) {
	s := NewScreen(nil, WithDisplaySize(100, 100))
	a := NewComponent(WithName("a"))
	s.Add(a)

	a.SetHovered(true)
	a.SetVisible(false)

	assert.Nil(t, s.Hovered(), "hiding releases the register")
}
