// Package demo loads the layout shown by the tabdemo command: windows with
// tab groups docked to their edges, described in YAML.
package demo

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/widget"
)

// Config is a demo layout.
type Config struct {
	Display Display  `yaml:"display"`
	Theme   string   `yaml:"theme" validate:"omitempty,oneof=default dark"`
	Icons   string   `yaml:"icons"`
	Windows []Window `yaml:"windows" validate:"required,min=1,dive"`
}

// Display is the initial display size.
type Display struct {
	Width  int `yaml:"width" validate:"gt=0"`
	Height int `yaml:"height" validate:"gt=0"`
}

// Window is a container tab groups dock to.
type Window struct {
	Name    string  `yaml:"name" validate:"required"`
	X       int     `yaml:"x"`
	Y       int     `yaml:"y"`
	Width   int     `yaml:"width" validate:"gt=0"`
	Height  int     `yaml:"height" validate:"gt=0"`
	Padding int     `yaml:"padding" validate:"gte=0"`
	Groups  []Group `yaml:"groups" validate:"dive"`
}

// Group is a tab group docked to one edge of its window.
type Group struct {
	Edge     string    `yaml:"edge" validate:"required,oneof=top bottom left right"`
	Style    string    `yaml:"style" validate:"omitempty,oneof=window panel"`
	Offset   *int      `yaml:"offset" validate:"omitempty,gte=0"`
	Spacing  int       `yaml:"spacing" validate:"gte=0"`
	Displace bool      `yaml:"displace"`
	Active   string    `yaml:"active"`
	Tabs     []TabSpec `yaml:"tabs" validate:"required,min=1,dive"`
}

// TabSpec is one tab and the page it controls.
type TabSpec struct {
	Name     string `yaml:"name" validate:"required"`
	Width    int    `yaml:"width" validate:"gt=0"`
	Height   int    `yaml:"height" validate:"gt=0"`
	Tooltip  string `yaml:"tooltip"`
	Disabled bool   `yaml:"disabled"`
}

// Overrides replace values of every group, typically from CLI flags.
// Nil fields keep the configured value.
type Overrides struct {
	Edge     *string
	Style    *string
	Offset   *int
	Spacing  *int
	Displace *bool
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

// Load reads and validates a layout file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, widget.NewConfigError(path, "read failed", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a layout.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, widget.NewConfigError("", "invalid yaml", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct rules and the cross references: unique window
// and tab names, one group per window edge, and active tabs that exist.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	windows := make(map[string]bool, len(c.Windows))
	for i, w := range c.Windows {
		if windows[w.Name] {
			return widget.NewConfigError(fieldForWindow(i, "name"),
				fmt.Sprintf("duplicate window %q", w.Name), nil)
		}
		windows[w.Name] = true

		edges := make(map[string]bool, len(w.Groups))
		for j, g := range w.Groups {
			if edges[g.Edge] {
				return widget.NewConfigError(fieldForGroup(i, j, "edge"),
					fmt.Sprintf("window %q already has a group on %s", w.Name, g.Edge), nil)
			}
			edges[g.Edge] = true

			tabs := make(map[string]bool, len(g.Tabs))
			for k, t := range g.Tabs {
				if tabs[t.Name] {
					return widget.NewConfigError(fieldForGroup(i, j, fmt.Sprintf("tabs[%d].name", k)),
						fmt.Sprintf("duplicate tab %q", t.Name), nil)
				}
				tabs[t.Name] = true
			}
			if g.Active != "" && !tabs[g.Active] {
				return widget.NewConfigError(fieldForGroup(i, j, "active"),
					fmt.Sprintf("unknown tab %q", g.Active), nil)
			}
		}
	}
	return nil
}

// Apply sets the overrides on every group and revalidates.
func (c *Config) Apply(o Overrides) error {
	for i := range c.Windows {
		for j := range c.Windows[i].Groups {
			g := &c.Windows[i].Groups[j]
			if o.Edge != nil {
				g.Edge = strings.ToLower(*o.Edge)
			}
			if o.Style != nil {
				g.Style = strings.ToLower(*o.Style)
			}
			if o.Offset != nil {
				off := *o.Offset
				g.Offset = &off
			}
			if o.Spacing != nil {
				g.Spacing = *o.Spacing
			}
			if o.Displace != nil {
				g.Displace = *o.Displace
			}
		}
	}
	return c.Validate()
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := yamlishFieldName(fe)
		return widget.NewConfigError(field,
			fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
	}
	return widget.NewConfigError("", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

func fieldForWindow(i int, field string) string {
	return fmt.Sprintf("windows[%d].%s", i, field)
}

func fieldForGroup(i, j int, field string) string {
	return fmt.Sprintf("windows[%d].groups[%d].%s", i, j, field)
}
