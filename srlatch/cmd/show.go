package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sarchlab/srlatch/datarecording"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/tracing"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file.sqlite3>",
	Short: "Print a run recorded with --trace-db.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err != nil {
			return err
		}

		reader := datarecording.NewReader(args[0])
		defer reader.Close()

		reader.MapTable(datarecording.ExecTableName, datarecording.ExecInfo{})
		reader.MapTable(tracing.CycleTableName, plc.CycleRecord{})

		return showRun(cmd, reader)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showRun(cmd *cobra.Command, reader datarecording.DataReader) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	infos, _, err := reader.Query(ctx, datarecording.ExecTableName,
		datarecording.QueryParams{})
	if err != nil {
		return fmt.Errorf("reading %s: %w", datarecording.ExecTableName, err)
	}

	for _, i := range infos {
		info := i.(*datarecording.ExecInfo)
		fmt.Fprintf(out, "%s: %s\n", info.Property, info.Value)
	}

	cycles, _, err := reader.Query(ctx, tracing.CycleTableName,
		datarecording.QueryParams{OrderBy: "Cycle"})
	if err != nil {
		return fmt.Errorf("reading %s: %w", tracing.CycleTableName, err)
	}

	fmt.Fprintf(out, "Cycle, Mode, Raw, Button, SR, Coerced, Time\n")
	for _, c := range cycles {
		r := c.(*plc.CycleRecord)
		fmt.Fprintf(out, "%d, %s, %d, %d, %d, %t, %.10f\n",
			r.Cycle, r.Mode, r.Raw, r.Button, r.SR, r.Coerced, r.Time)
	}

	return nil
}
