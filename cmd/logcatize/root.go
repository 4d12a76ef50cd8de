// Package cmd wires the command-line interface around the stream driver.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/logcatize/logcatize/internal/ansi"
	"github.com/logcatize/logcatize/internal/monitor"
	"github.com/logcatize/logcatize/internal/render"
	"github.com/logcatize/logcatize/internal/stream"
	"github.com/logcatize/logcatize/internal/theme"
)

var (
	ignore    bool
	spotlight string
	listAnsi  bool
	showStats bool

	rootCmd = &cobra.Command{
		Use:   "logcatize",
		Short: "logcatize colorizes Android adb logcat output",
		Long: `logcatize colorizes Android adb logcat output.
Pipe adb into this program. It recognizes the Tag, Process, Brief, Time,
and ThreadTime logcat formats and colors each line by severity.`,
		Example: `  adb logcat | logcatize
  adb -s emulator-5556 logcat -v time System.err:V *:S | logcatize
  adb logcat -v time | egrep -i '(sensor|wifi)' | logcatize -s wifi`,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&ignore, "ignore", "i", false, "do not output non-matching lines")
	rootCmd.PersistentFlags().StringVarP(&spotlight, "spotlight", "s", "", "highlight regex pattern in the output")
	rootCmd.PersistentFlags().BoolVar(&listAnsi, "list-ansi", false, "list available ansi escape codes and exit")
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "print a processing summary to stderr at end of input")
}

func run(cmd *cobra.Command, args []string) error {
	if listAnsi {
		ansi.ListAll(os.Stdout)
		return nil
	}

	// An interactive terminal on stdin means nothing is piped in; show
	// help instead of blocking on a read that will never see log lines.
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return cmd.Help()
	}

	stats := monitor.NewStats()
	driver := stream.New(render.New(theme.Default(), spotlight), ignore, stats)

	if err := driver.Run(os.Stdin, os.Stdout); err != nil {
		return err
	}

	if showStats {
		printStats(stats)
	}
	return nil
}

// printStats goes to stderr so stdout stays clean for further piping.
func printStats(stats *monitor.Stats) {
	fmt.Fprintln(os.Stderr)
	color.New(color.Bold).Fprintln(os.Stderr, "── logcatize summary ──")
	fmt.Fprintln(os.Stderr, stats.Summary())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
