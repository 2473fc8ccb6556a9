package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shadowroll-bot/internal/render"
	"shadowroll-bot/internal/roller"
)

var rollEdition string

var rollCmd = &cobra.Command{
	Use:   "roll <dice>[e] [limit] [threshold] [comment...]",
	Short: "Resolve a roll in the terminal",
	Example: `  shadowroll roll 10
  shadowroll roll 12 6 hard
  shadowroll roll --edition SR4 10 5
  shadowroll roll 8e 4 t2 sneaking in`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringVar(&rollEdition, "edition", "SR5", "ruleset edition (SR4, SR5, SR6)")
}

func runRoll(cmd *cobra.Command, args []string) error {
	ed, ok := roller.ParseEdition(rollEdition)
	if !ok {
		return fmt.Errorf("unknown edition %q", rollEdition)
	}

	req, err := roller.Parse(args, ed)
	if err != nil {
		return err
	}

	dicePool := roller.New(nil)
	waves := dicePool.Roll(req.DiceCount, req.Edge)
	res := roller.Evaluate(waves, req.Limit, req.Threshold)

	fmt.Fprintln(cmd.OutOrStdout(), render.Roll(ed, req, res))
	return nil
}
