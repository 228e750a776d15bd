package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect_DefaultLayout(t *testing.T) {
	out, err := execute(t, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "inventory (Container) 120,144 320x196")
	assert.Contains(t, out, "items (Tab) 123,122 28x24 [active]")
	assert.Contains(t, out, "locked (Tab)")
	assert.Contains(t, out, "[edge=left style=panel]")
	assert.NotContains(t, out, "tools-page")
}

func TestInspect_Select(t *testing.T) {
	out, err := execute(t, "inspect", "--select", "tools,armor")
	require.NoError(t, err)

	assert.Contains(t, out, "tools (Tab) 151,122 28x24 [active]")
	assert.Contains(t, out, "armor (Tab)")
	assert.Contains(t, out, "tools-page (Container)")
	assert.NotContains(t, out, "items-page")

	_, err = execute(t, "inspect", "--select", "nothing")
	assert.EqualError(t, err, `no tab named "nothing"`)
}

func TestInspect_Hidden(t *testing.T) {
	out, err := execute(t, "inspect", "--hidden")
	require.NoError(t, err)
	assert.Contains(t, out, "tools-page (Container)")
	assert.Contains(t, out, "[hidden]")
}

func TestInspect_Overrides(t *testing.T) {
	out, err := execute(t, "inspect", "--edge", "bottom", "--style", "panel", "--displace=false")
	require.NoError(t, err)

	assert.Contains(t, out, "inventory (Container) 120,120 320x220")
	assert.Contains(t, out, "[edge=bottom style=panel]")
	assert.NotContains(t, out, "edge=left")

	_, err = execute(t, "inspect", "--edge", "diagonal")
	assert.Error(t, err)
}

func TestInspect_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	layout := `
display: {width: 300, height: 200}
windows:
  - name: box
    x: 10
    y: 40
    width: 100
    height: 50
    groups:
      - edge: top
        displace: true
        tabs: [{name: only, width: 12, height: 10}]
`
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))

	out, err := execute(t, "inspect", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "root (Container) 0,0 300x200")
	assert.Contains(t, out, "box (Container) 10,50 100x40")
	assert.Contains(t, out, "only (Tab) 13,42 12x10")

	_, err = execute(t, "inspect", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	_, err := execute(t, "inspect", "--log-level", "loud")
	assert.Error(t, err)

	_, err = execute(t, "inspect", "-v", "--log-level", "warn")
	assert.NoError(t, err)
}
