package widget

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcons_Default(t *testing.T) {
	icons := DefaultIcons()
	require.NotNil(t, icons)
	assert.Same(t, icons, DefaultIcons(), "built once")

	assert.Equal(t, 160, icons.Width)
	assert.Equal(t, 64, icons.Height)
	assert.Len(t, icons.Names(), 9)

	ic := icons.Lookup(StylePanel, EdgeBottom)
	assert.Equal(t, Icon{Name: "panel_bottom", U0: 0.2, V0: 0.5, U1: 0.4, V1: 1}, ic)

	full := icons.Full()
	assert.Equal(t, "full", full.Name)
	assert.InDelta(t, 0.8, full.U0, 1e-6)
}

func TestIcons_IconName(t *testing.T) {
	assert.Equal(t, "window_top", IconName(StyleWindow, EdgeTop))
	assert.Equal(t, "panel_right", IconName(StylePanel, EdgeRight))
}

func TestIcons_Load(t *testing.T) {
	set, err := LoadIcons(strings.NewReader(`
texture: custom.png
width: 64
height: 32
icons:
  window_top: {x: 0, y: 0, w: 32, h: 32}
`))
	require.NoError(t, err)

	assert.Equal(t, "custom.png", set.Texture)
	assert.Equal(t, []string{"window_top"}, set.Names())
	ic, ok := set.Get("window_top")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), ic.U1)

	assert.Equal(t, Icon{Name: IconFull, U1: 1, V1: 1}, set.Full(), "missing full falls back to the whole atlas")
	assert.Equal(t, IconFull, set.Lookup(StylePanel, EdgeLeft).Name)
}

func TestIcons_LoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantIcon string
		wantMsg  string
	}{
		{
			name:    "bad yaml",
			input:   "icons: [",
			wantMsg: "invalid yaml",
		},
		{
			name:    "missing texture",
			input:   "width: 10\nheight: 10\nicons:\n  a: {x: 0, y: 0, w: 1, h: 1}\n",
			wantMsg: "texture failed validation for tag 'required'",
		},
		{
			name:    "zero width",
			input:   "texture: t.png\nwidth: 0\nheight: 10\nicons:\n  a: {x: 0, y: 0, w: 1, h: 1}\n",
			wantMsg: "width failed validation for tag 'gt'",
		},
		{
			name:    "no icons",
			input:   "texture: t.png\nwidth: 10\nheight: 10\n",
			wantMsg: "icons failed validation",
		},
		{
			name:  "empty region",
			input: "texture: t.png\nwidth: 10\nheight: 10\nicons:\n  a: {x: 0, y: 0, w: 0, h: 1}\n",
		},
		{
			name:     "outside atlas",
			input:    "texture: t.png\nwidth: 10\nheight: 10\nicons:\n  big: {x: 5, y: 0, w: 8, h: 4}\n",
			wantIcon: "big",
			wantMsg:  "region 5,0 8x4 exceeds atlas 10x10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadIcons(strings.NewReader(tt.input))
			require.Error(t, err)

			var ae *AtlasError
			require.True(t, errors.As(err, &ae))
			if tt.wantIcon != "" {
				assert.Equal(t, tt.wantIcon, ae.Icon)
			}
			assert.Contains(t, ae.Message, tt.wantMsg)
			assert.True(t, strings.HasPrefix(err.Error(), "icon atlas: "))
		})
	}
}

func TestIcons_NilSet(t *testing.T) {
	var s *IconSet
	_, ok := s.Get("full")
	assert.False(t, ok)
	assert.Nil(t, s.Names())
	assert.Equal(t, IconFull, s.Lookup(StyleWindow, EdgeTop).Name)
}

func TestErrors_Format(t *testing.T) {
	inner := errors.New("inner")

	err := NewConfigError("windows[0].name", "required", inner)
	assert.Equal(t, "config: windows[0].name: required", err.Error())
	assert.ErrorIs(t, err, inner)

	assert.Equal(t, "config: bad", NewConfigError("", "bad", nil).Error())
	assert.Equal(t, "icon atlas: full: broken", NewAtlasError("full", "broken", nil).Error())

	var nilErr *AtlasError
	assert.Nil(t, nilErr.Unwrap())
	assert.Empty(t, nilErr.Error())
}

func TestTheme_ByName(t *testing.T) {
	for name, want := range map[string]Theme{"": DefaultTheme(), "default": DefaultTheme(), "dark": DarkTheme()} {
		got, ok := ThemeByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ThemeByName("neon")
	assert.False(t, ok)
}

func TestTheme_ContainerPainterUsesFocusColor(t *testing.T) {
	theme := DefaultTheme()
	c := NewComponent(WithName("c"), WithSize(Sz(10, 10)), WithBackground(ContainerPainter(theme)))

	r := &recordingRenderer{}
	c.Render(r)
	require.Len(t, r.ops, 5)
	assert.Equal(t, "rect c c6c6c6 a255", r.ops[0])
	assert.Equal(t, "rect c 404040 a255", r.ops[1])

	c.SetFocused(true)
	r = &recordingRenderer{}
	c.Render(r)
	assert.Equal(t, "rect c 00c8ff a255", r.ops[1])
}
