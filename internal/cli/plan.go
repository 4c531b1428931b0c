package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkuchta/orbit/pkg/menu"
	"github.com/mkuchta/orbit/pkg/menu/preset"
	"github.com/mkuchta/orbit/pkg/store"
)

// planCommand creates the plan command for building full menu plans.
func (c *CLI) planCommand() *cobra.Command {
	var (
		labels string
		output string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "plan <preset>",
		Short: "Build a menu plan from a preset",
		Long: `Build a menu plan from a preset.

The plan command loads the named preset from the preset file, builds the
full plan (one placement per item), and writes it as JSON. Item labels come
from --labels, falling back to the preset's items list.

With --save, the plan is also stored in the local plan store so it can be
served later by 'orbit serve'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], labels, output, save)
		},
	}

	cmd.Flags().StringVar(&labels, "labels", "", "comma-separated item labels (default: the preset's items)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <preset>.plan.json)")
	cmd.Flags().BoolVar(&save, "save", false, "also save the plan to the local plan store")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, name, labels, output string, save bool) error {
	ctx := cmd.Context()

	path, err := preset.DefaultPath()
	if err != nil {
		return err
	}
	presets, err := preset.Load(path)
	if err != nil {
		return err
	}
	p, err := preset.Lookup(presets, name)
	if err != nil {
		return err
	}

	itemLabels := parseLabels(labels)
	if len(itemLabels) == 0 {
		itemLabels = p.Items
	}
	items := make([]menu.Item, len(itemLabels))
	for i, l := range itemLabels {
		items[i] = menu.NewItem(l)
	}

	prog := newProgress(c.Logger)
	plan, err := menu.Build(p.Config(), items)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Built plan with %d placements", plan.Count()))

	if output == "" {
		output = name + ".plan.json"
	}
	if err := menu.WritePlanFile(plan, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Plan complete")
	printFile(output)
	printDetail("id: %s", plan.ID)

	if save {
		dir, err := dataDir()
		if err != nil {
			return err
		}
		st, err := store.NewFileStore(dir)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		if err := st.Save(ctx, plan); err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		printDetail("saved to plan store")
	}

	printNewline()
	printNextStep("Render", "orbit render "+output)
	printNextStep("Preview", "orbit preview "+output)
	return nil
}
