package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/widget"
	"github.com/go-theft-auto/widget/internal/demo"
	"github.com/go-theft-auto/widget/internal/inspect"
)

type inspectOptions struct {
	hidden bool
	sel    []string
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the laid-out component tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runInspect(cmd, cfg, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.hidden, "hidden", false, "Include hidden components")
	cmd.Flags().StringSliceVar(&opts.sel, "select", nil, "Activate these tabs before printing")

	return cmd
}

func runInspect(cmd *cobra.Command, cfg *demo.Config, opts *inspectOptions) error {
	screenOpts, err := cfg.ScreenOptions()
	if err != nil {
		return err
	}
	screen := widget.NewScreen(nil, screenOpts...)
	layout, err := demo.Build(screen, cfg)
	if err != nil {
		return err
	}

	for _, name := range opts.sel {
		found := false
		for _, g := range layout.Groups {
			if g.SetActiveTabByName(name) {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("no tab named %q", name)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, inspect.Tree(screen.Root(), inspect.Options{
		Hidden: opts.hidden,
		Plain:  !isTerminal(out),
	}))
	return nil
}
