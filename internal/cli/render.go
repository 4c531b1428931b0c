package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkuchta/orbit/pkg/cache"
	oerrors "github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/menu"
	"github.com/mkuchta/orbit/pkg/render"
)

// Render engines.
const (
	engineSVG = "svg"
	engineDOT = "dot"
)

// renderCommand creates the render command for plan previews.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		engine  string
		spokes  bool
		labels  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [plan.json]",
		Short: "Render a plan as an SVG preview",
		Long: `Render a plan as an SVG preview.

The default engine draws the anchor and satellite circles directly. With
--engine dot, the plan is exported as a Graphviz graph with pinned positions
and rasterized through the neato engine instead. Rasterized output is cached
keyed by the plan contents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], output, engine, spokes, labels, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().StringVar(&engine, "engine", engineSVG, "render engine: svg (default), dot")
	cmd.Flags().BoolVar(&spokes, "spokes", false, "draw spokes from the anchor to each satellite")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw item labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input, output, engine string, spokes, labels, noCache bool) error {
	plan, err := menu.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	var data []byte
	switch engine {
	case engineSVG:
		opts := []render.SVGOption{}
		if spokes {
			opts = append(opts, render.WithSpokes())
		}
		if labels {
			opts = append(opts, render.WithLabels())
		}
		data = render.SVG(plan, opts...)
	case engineDOT:
		data, err = c.renderDOTCached(cmd.Context(), plan, noCache)
		if err != nil {
			return err
		}
	default:
		return oerrors.New(oerrors.ErrCodeUnsupported, "unknown engine %q (want svg or dot)", engine)
	}

	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + ".svg"
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Render complete")
	printFile(output)
	printDetail("%d placements · %s engine", plan.Count(), engine)
	return nil
}

// renderDOTCached rasterizes the plan through Graphviz, reusing an earlier
// rasterization of an identical plan when possible.
func (c *CLI) renderDOTCached(ctx context.Context, plan menu.Plan, noCache bool) ([]byte, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	planData, _ := menu.MarshalPlan(plan)
	key := keyer.ArtifactKey(cache.Hash(planData), engineDOT)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		return data, nil
	}

	prog := newProgress(loggerFromContext(ctx))
	data, err := render.RenderDOT(ctx, render.ToDOT(plan))
	if err != nil {
		return nil, fmt.Errorf("render DOT: %w", err)
	}
	prog.done("Rasterized DOT graph")

	_ = store.Set(ctx, key, data, 0)
	return data, nil
}
