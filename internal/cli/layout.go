package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mkuchta/orbit/pkg/cache"
	oerrors "github.com/mkuchta/orbit/pkg/errors"
	"github.com/mkuchta/orbit/pkg/layout"
	"github.com/mkuchta/orbit/pkg/menu"
	"github.com/mkuchta/orbit/pkg/menu/preset"
)

// layoutFlags are the flags shared by the straight and arc commands.
type layoutFlags struct {
	count      int
	center     string
	labels     string
	presetName string
	output     string
	noCache    bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", 3, "number of satellites")
	cmd.Flags().StringVar(&f.center, "center", "0,0", "anchor point as x,y")
	cmd.Flags().StringVar(&f.labels, "labels", "", "comma-separated item labels (overrides --count)")
	cmd.Flags().StringVar(&f.presetName, "preset", "", "load geometry from a named preset")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the plan as JSON to this file")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// straightCommand creates the straight layout command.
func (c *CLI) straightCommand() *cobra.Command {
	var flags layoutFlags
	cfg := menu.Config{Mode: menu.ModeStraight}
	var direction string

	cmd := &cobra.Command{
		Use:   "straight",
		Short: "Compute a straight-line satellite layout",
		Long: `Compute a straight-line satellite layout.

Satellites are placed along one axis at fixed-step offsets from the anchor.
The step is (primary-size + satellite-size)/2 + spacing, so the first
satellite clears the primary button and subsequent ones clear each other.

With --preset, geometry is loaded from the preset file first and any
explicitly set flags override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oerrors.ValidateDirection(direction); err != nil {
				return err
			}
			cfg.Direction = layout.Direction(direction)
			return c.runLayout(cmd, &cfg, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&direction, "direction", "d", "right", "placement direction: left, right, top, bottom")
	cmd.Flags().Float64Var(&cfg.Spacing, "spacing", 10, "gap between satellites")
	cmd.Flags().Float64Var(&cfg.PrimarySize, "primary-size", 50, "diameter of the primary button")
	cmd.Flags().Float64Var(&cfg.SatelliteSize, "satellite-size", 40, "diameter of the satellite buttons")

	return cmd
}

// arcCommand creates the arc layout command.
func (c *CLI) arcCommand() *cobra.Command {
	var flags layoutFlags
	cfg := menu.Config{Mode: menu.ModeArc}
	var winding string

	cmd := &cobra.Command{
		Use:   "arc",
		Short: "Compute an arc satellite layout",
		Long: `Compute an arc satellite layout.

Satellites are placed on the circle of --radius around the anchor, evenly
spaced by index between --start-angle and --end-angle (radians). The winding
applies the sign of the angular steps: clockwise sweeps visually downward on
screen coordinates.

With --preset, geometry is loaded from the preset file first and any
explicitly set flags override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oerrors.ValidateWinding(winding); err != nil {
				return err
			}
			cfg.Winding = layout.Winding(winding)
			return c.runLayout(cmd, &cfg, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&winding, "winding", "w", "clockwise", "angular direction: clockwise, counterClockwise")
	cmd.Flags().Float64Var(&cfg.StartAngle, "start-angle", 0, "start angle in radians")
	cmd.Flags().Float64Var(&cfg.EndAngle, "end-angle", math.Pi, "end angle in radians")
	cmd.Flags().Float64Var(&cfg.Radius, "radius", 100, "arc radius")

	return cmd
}

// runLayout resolves the configuration, computes the plan (through the
// cache), and prints or writes the result.
func (c *CLI) runLayout(cmd *cobra.Command, cfg *menu.Config, flags layoutFlags) error {
	ctx := cmd.Context()

	if flags.presetName != "" {
		if err := applyPreset(cfg, &flags, cmd); err != nil {
			return err
		}
	}

	center, err := parseCenter(flags.center)
	if err != nil {
		return err
	}
	cfg.Center = center

	labels := parseLabels(flags.labels)
	count := flags.count
	if len(labels) > 0 {
		count = len(labels)
	}
	if err := oerrors.ValidateCount(count); err != nil {
		return err
	}

	items := make([]menu.Item, count)
	for i := range items {
		if i < len(labels) {
			items[i] = menu.Item{Label: labels[i]}
		}
	}

	plan, cacheHit, err := c.buildPlanCached(ctx, *cfg, items, flags.noCache)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := menu.WritePlanFile(plan, flags.output); err != nil {
			return fmt.Errorf("write output %s: %w", flags.output, err)
		}
		printSuccess("Layout complete")
		printFile(flags.output)
		printStats(plan.Count(), cacheHit)
		printNewline()
		printNextStep("Render", "orbit render "+flags.output)
		return nil
	}

	printSuccess("Layout complete")
	for i, pl := range plan.Placements {
		printPoint(i+1, pl.Label, pl.Point.X, pl.Point.Y)
	}
	printStats(plan.Count(), cacheHit)
	return nil
}

// buildPlanCached computes a plan, serving an identical earlier computation
// from the cache when possible.
func (c *CLI) buildPlanCached(ctx context.Context, cfg menu.Config, items []menu.Item, noCache bool) (menu.Plan, bool, error) {
	store, err := newCache(noCache)
	if err != nil {
		return menu.Plan{}, false, err
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	cfgData, _ := json.Marshal(cfg)
	key := keyer.PlanKey(cache.Hash(cfgData), len(items))

	// Only cache anonymous layouts: labeled items change the plan content.
	cacheable := true
	for _, it := range items {
		if it.ID != "" || it.Label != "" {
			cacheable = false
			break
		}
	}

	if cacheable {
		if data, hit, err := store.Get(ctx, key); err == nil && hit {
			if plan, err := menu.UnmarshalPlan(data); err == nil {
				return plan, true, nil
			}
		}
	}

	prog := newProgress(c.Logger)
	plan, err := menu.Build(cfg, items)
	if err != nil {
		return menu.Plan{}, false, err
	}
	prog.done(fmt.Sprintf("Computed %d placements", plan.Count()))

	if cacheable {
		if data, err := menu.MarshalPlan(plan); err == nil {
			_ = store.Set(ctx, key, data, 0)
		}
	}

	return plan, false, nil
}

// applyPreset loads the named preset and folds it into cfg, keeping any
// flag the user set explicitly.
func applyPreset(cfg *menu.Config, flags *layoutFlags, cmd *cobra.Command) error {
	path, err := preset.DefaultPath()
	if err != nil {
		return err
	}
	presets, err := preset.Load(path)
	if err != nil {
		return err
	}
	p, err := preset.Lookup(presets, flags.presetName)
	if err != nil {
		return err
	}

	pc := p.Config()
	if pc.Mode != "" && pc.Mode != cfg.Mode {
		return oerrors.New(oerrors.ErrCodeInvalidPreset,
			"preset %q is a %s layout, not %s", flags.presetName, pc.Mode, cfg.Mode)
	}

	merge := func(flag string, dst *float64, src float64) {
		if !cmd.Flags().Changed(flag) {
			*dst = src
		}
	}
	merge("spacing", &cfg.Spacing, pc.Spacing)
	merge("primary-size", &cfg.PrimarySize, pc.PrimarySize)
	merge("satellite-size", &cfg.SatelliteSize, pc.SatelliteSize)
	merge("start-angle", &cfg.StartAngle, pc.StartAngle)
	merge("end-angle", &cfg.EndAngle, pc.EndAngle)
	merge("radius", &cfg.Radius, pc.Radius)

	if !cmd.Flags().Changed("direction") && pc.Direction != "" {
		if err := oerrors.ValidateDirection(string(pc.Direction)); err != nil {
			return err
		}
		cfg.Direction = pc.Direction
	}
	if !cmd.Flags().Changed("winding") && pc.Winding != "" {
		if err := oerrors.ValidateWinding(string(pc.Winding)); err != nil {
			return err
		}
		cfg.Winding = pc.Winding
	}
	if !cmd.Flags().Changed("center") {
		flags.center = fmt.Sprintf("%g,%g", pc.Center.X, pc.Center.Y)
	}
	if !cmd.Flags().Changed("labels") && len(p.Items) > 0 {
		flags.labels = joinLabels(p.Items)
	}

	return nil
}

func joinLabels(labels []string) string {
	out := ""
	for i, l := range labels {
		if i > 0 {
			out += ","
		}
		out += l
	}
	return out
}
