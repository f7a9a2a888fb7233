// Package cmd provides the command-line interface of the SR latch simulator.
package cmd

import (
	"errors"
	"log"

	"github.com/sarchlab/srlatch/latch"
	"github.com/sarchlab/srlatch/plc"
	"github.com/sarchlab/srlatch/simulation"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srlatch",
	Short: "srlatch simulates a PLC driving an SR latch for 11 cycles.",
	Long: `srlatch simulates a PLC driving an SR latch for 11 cycles. ` +
		`In manual mode the button is read from the keyboard and SR follows ` +
		`it. In memory mode the button is random and SR is set by a press, ` +
		`reset on even cycles and held on odd cycles.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		console := plc.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

		mode, ok, err := selectMode(cmd, console)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		builder := simulationBuilder(cmd, console).WithMode(mode)

		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			builder = builder.WithSeed(seed)
		}

		return runSimulation(cmd, builder)
	},
}

func init() {
	rootCmd.Flags().String("mode", "",
		"Skip the menu and run in mode manual (1) or memory (2)")
	rootCmd.Flags().Int64("seed", 0,
		"Seed of the random button in memory mode, defaults to the clock")

	rootCmd.PersistentFlags().String("trace-db", "",
		"Record every cycle into the SQLite database <path>.sqlite3")
	rootCmd.PersistentFlags().String("trace-csv", "",
		"Record every cycle into a CSV file")
	rootCmd.PersistentFlags().Bool("log-events", false,
		"Log every simulation event to stderr")
	rootCmd.PersistentFlags().Bool("summary", false,
		"Print how many cycles were set, reset or held to stderr")
	rootCmd.PersistentFlags().Bool("monitor", false,
		"Serve the running simulation over HTTP")
	rootCmd.PersistentFlags().Int("monitor-port", 0,
		"Port of the monitoring server, random if 0")
	rootCmd.PersistentFlags().Bool("open-browser", false,
		"Open the monitoring page in a browser")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}

func selectMode(
	cmd *cobra.Command,
	console *plc.Console,
) (latch.Mode, bool, error) {
	if !cmd.Flags().Changed("mode") {
		mode, ok := plc.SelectMode(console)
		return mode, ok, nil
	}

	value, _ := cmd.Flags().GetString("mode")

	mode, err := latch.ParseMode(value)
	if err != nil {
		return 0, false, err
	}

	return mode, true, nil
}

func simulationBuilder(
	cmd *cobra.Command,
	console *plc.Console,
) simulation.Builder {
	flags := cmd.Flags()
	builder := simulation.MakeBuilder().WithConsole(console)

	if flags.Changed("trace-db") {
		path, _ := flags.GetString("trace-db")
		builder = builder.WithTraceDB(path)
	}

	if path, _ := flags.GetString("trace-csv"); path != "" {
		builder = builder.WithTraceCSV(path)
	}

	if on, _ := flags.GetBool("log-events"); on {
		builder = builder.WithEventLogger(log.New(cmd.ErrOrStderr(), "", 0))
	}

	if on, _ := flags.GetBool("monitor"); on {
		builder = builder.WithMonitor()
	}

	if port, _ := flags.GetInt("monitor-port"); port != 0 {
		builder = builder.WithMonitorPort(port)
	}

	if on, _ := flags.GetBool("open-browser"); on {
		builder = builder.WithOpenBrowser()
	}

	return builder
}

func runSimulation(cmd *cobra.Command, builder simulation.Builder) error {
	s := builder.Build()

	err := s.Run()

	if on, _ := cmd.Flags().GetBool("summary"); on {
		s.WriteSummary(cmd.ErrOrStderr())
	}

	return errors.Join(err, s.Terminate())
}
