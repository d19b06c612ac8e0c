package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tessera/internal/demo"
	"github.com/vango-dev/tessera/internal/errors"
	"github.com/vango-dev/tessera/pkg/host/memhost"
	"github.com/vango-dev/tessera/pkg/live"
	"github.com/vango-dev/tessera/pkg/reconcile"
	"github.com/vango-dev/tessera/pkg/view"
)

func renderCmd() *cobra.Command {
	var (
		ids       bool
		mutations bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the demo's HTML or mutation log",
		Long: `Render the demo once into an in-memory host and print the result.

Examples:
  tessera render
  tessera render --ids
  tessera render --mutations`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), demo.New().Render, ids, mutations)
		},
	}

	cmd.Flags().BoolVar(&ids, "ids", false, "Add host node IDs as data-tid attributes")
	cmd.Flags().BoolVarP(&mutations, "mutations", "m", false, "Print host mutations instead of HTML")

	return cmd
}

func runRender(w io.Writer, render live.RenderFunc, ids, mutations bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("T021").WithDetailf("%v", r)
		}
	}()

	host := memhost.New(live.RootTag)
	reconcile.ReconcileChildren[*memhost.Node](host, nil, view.Build(render()), host.Root())

	if mutations {
		for _, m := range host.Mutations() {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return errors.New("T021").Wrap(err)
			}
		}
		return nil
	}

	var opts memhost.HTMLOptions
	if ids {
		opts.IDAttribute = "data-tid"
	}
	if err := memhost.WriteHTML(w, host.Root(), opts); err != nil {
		return errors.New("T021").Wrap(err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
