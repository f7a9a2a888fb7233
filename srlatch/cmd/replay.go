package cmd

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/plc"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [button]...",
	Short: "Run the latch with a fixed sequence of button readings.",
	Long: "`replay --mode memory 0 1 0 0 1` runs the 11 cycles with the given " +
		"readings instead of asking for them. Missing readings are 0.",
	Args: cobra.MaximumNArgs(latch.NumCycles),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseReadings(args)
		if err != nil {
			return err
		}

		value, _ := cmd.Flags().GetString("mode")

		mode, err := latch.ParseMode(value)
		if err != nil {
			return err
		}

		console := plc.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
		builder := simulationBuilder(cmd, console).
			WithMode(mode).
			WithButton(plc.NewSequenceButton(values...))

		return runSimulation(cmd, builder)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("mode", "manual",
		"Mode to replay: manual (1) or memory (2)")
}

func parseReadings(args []string) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid button reading %q: %w", arg, err)
		}

		values = append(values, v)
	}

	return values, nil
}
