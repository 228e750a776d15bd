package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/widget"
	"github.com/go-theft-auto/widget/internal/demo"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	config   string

	edge     string
	style    string
	offset   int
	spacing  int
	displace bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tabdemo",
		Short:         "Tab groups docked to the edges of windows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(flags, cmd.ErrOrStderr())
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log state transitions and tab changes")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVarP(&flags.config, "config", "c", "", "Layout file (default: built-in layout)")
	pf.StringVar(&flags.edge, "edge", "top", "Dock every group to this edge (top, bottom, left, right)")
	pf.StringVar(&flags.style, "style", "window", "Tab style of every group (window, panel)")
	pf.IntVar(&flags.offset, "offset", widget.DefaultTabOffset, "Gap before the first tab")
	pf.IntVar(&flags.spacing, "spacing", 0, "Gap between tabs")
	pf.BoolVar(&flags.displace, "displace", true, "Shrink windows to make room for their tabs")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))

	return cmd
}

// loadConfig reads the layout and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*demo.Config, error) {
	cfg := demo.Default()
	if flags.config != "" {
		var err error
		if cfg, err = demo.Load(flags.config); err != nil {
			return nil, err
		}
	}

	var o demo.Overrides
	changed := cmd.Flags().Changed
	if changed("edge") {
		o.Edge = &flags.edge
	}
	if changed("style") {
		o.Style = &flags.style
	}
	if changed("offset") {
		o.Offset = &flags.offset
	}
	if changed("spacing") {
		o.Spacing = &flags.spacing
	}
	if changed("displace") {
		o.Displace = &flags.displace
	}
	if err := cfg.Apply(o); err != nil {
		return nil, err
	}
	return cfg, nil
}
