package widget

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// IconFull is the icon used when no style and edge specific icon exists.
const IconFull = "full"

// Icon is a region of the icon atlas in normalized texture coordinates.
type Icon struct {
	Name           string
	U0, V0, U1, V1 float32
}

// IconSet maps icon names to atlas regions. Tab icons are named
// "<style>_<edge>", for example "window_top" or "panel_left".
type IconSet struct {
	Texture string
	Width   int
	Height  int
	icons   map[string]Icon
}

// IconName returns the atlas name of the tab icon for style and edge.
func IconName(style TabStyle, edge Edge) string {
	return style.String() + "_" + edge.String()
}

// Get returns the named icon.
func (s *IconSet) Get(name string) (Icon, bool) {
	if s == nil {
		return Icon{}, false
	}
	ic, ok := s.icons[name]
	return ic, ok
}

// Full returns the fallback icon. A set without one yields the whole atlas.
func (s *IconSet) Full() Icon {
	if ic, ok := s.Get(IconFull); ok {
		return ic
	}
	return Icon{Name: IconFull, U1: 1, V1: 1}
}

// Lookup returns the tab icon for style and edge, falling back to Full.
func (s *IconSet) Lookup(style TabStyle, edge Edge) Icon {
	if ic, ok := s.Get(IconName(style, edge)); ok {
		return ic
	}
	return s.Full()
}

// Names returns the icon names in sorted order.
func (s *IconSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.icons))
	for name := range s.icons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// atlasFile is the YAML form of an icon atlas.
type atlasFile struct {
	Texture string               `yaml:"texture" validate:"required"`
	Width   int                  `yaml:"width" validate:"gt=0"`
	Height  int                  `yaml:"height" validate:"gt=0"`
	Icons   map[string]atlasIcon `yaml:"icons" validate:"required,min=1,dive,keys,required,endkeys"`
}

type atlasIcon struct {
	X int `yaml:"x" validate:"gte=0"`
	Y int `yaml:"y" validate:"gte=0"`
	W int `yaml:"w" validate:"gt=0"`
	H int `yaml:"h" validate:"gt=0"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// LoadIcons reads an icon atlas description:
//
//	texture: tabs.png
//	width: 160
//	height: 64
//	icons:
//	  full:       {x: 128, y: 0, w: 32, h: 32}
//	  window_top: {x: 0,   y: 0, w: 32, h: 32}
//
// Every icon must lie within the atlas. Failures are *AtlasError.
func LoadIcons(r io.Reader) (*IconSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewAtlasError("", "read failed", err)
	}

	var f atlasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, NewAtlasError("", "invalid yaml", err)
	}

	if err := validatorInstance().Struct(&f); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			fe := ves[0]
			return nil, NewAtlasError("", fmt.Sprintf("%s failed validation for tag '%s'",
				strings.ToLower(fe.Field()), fe.Tag()), err)
		}
		return nil, NewAtlasError("", err.Error(), err)
	}

	set := &IconSet{
		Texture: f.Texture,
		Width:   f.Width,
		Height:  f.Height,
		icons:   make(map[string]Icon, len(f.Icons)),
	}
	for name, ic := range f.Icons {
		if err := validatorInstance().Struct(&ic); err != nil {
			return nil, NewAtlasError(name, "invalid region", err)
		}
		if ic.X+ic.W > f.Width || ic.Y+ic.H > f.Height {
			return nil, NewAtlasError(name, fmt.Sprintf("region %d,%d %dx%d exceeds atlas %dx%d",
				ic.X, ic.Y, ic.W, ic.H, f.Width, f.Height), nil)
		}
		w, h := float32(f.Width), float32(f.Height)
		set.icons[name] = Icon{
			Name: name,
			U0:   float32(ic.X) / w,
			V0:   float32(ic.Y) / h,
			U1:   float32(ic.X+ic.W) / w,
			V1:   float32(ic.Y+ic.H) / h,
		}
	}
	return set, nil
}

// defaultAtlas lays out the built-in tab atlas: one row per style, one
// column per edge, and the fallback in the last column.
const defaultAtlas = `
texture: tabs.png
width: 160
height: 64
icons:
  full:          {x: 128, y: 0,  w: 32, h: 32}
  window_top:    {x: 0,   y: 0,  w: 32, h: 32}
  window_bottom: {x: 32,  y: 0,  w: 32, h: 32}
  window_left:   {x: 64,  y: 0,  w: 32, h: 32}
  window_right:  {x: 96,  y: 0,  w: 32, h: 32}
  panel_top:     {x: 0,   y: 32, w: 32, h: 32}
  panel_bottom:  {x: 32,  y: 32, w: 32, h: 32}
  panel_left:    {x: 64,  y: 32, w: 32, h: 32}
  panel_right:   {x: 96,  y: 32, w: 32, h: 32}
`

var defaultIcons = sync.OnceValue(func() *IconSet {
	set, err := LoadIcons(strings.NewReader(defaultAtlas))
	if err != nil {
		panic("widget: built-in icon atlas: " + err.Error())
	}
	return set
})

// DefaultIcons returns the built-in tab icon atlas.
func DefaultIcons() *IconSet {
	return defaultIcons()
}
