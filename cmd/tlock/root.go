package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tlock/mode"
	"github.com/lixenwraith/tlock/timing"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	regenerate bool
	yes        bool
	watch      bool
	logging    bool
	color      string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "tlock",
	Short: "Big-digit clock, stopwatch and countdown for the terminal",
	Long: `tlock draws the time in large block digits in the middle of the terminal.

With no subcommand it shows the current time and date. Colors, formats and
frame rate come from the configuration file, which is generated on first run.

Press CTRL-C to quit.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, mode.Clock, 0)
	},
}

var chronoCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Run a stopwatch",
	Long: `Run a stopwatch.

Keys: space pause/resume, r reset, l record a lap,
Up/Down scroll laps, PgUp/PgDn jump to newest/oldest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(cmd, mode.Chrono, 0)
	},
}

var countdownCmd = &cobra.Command{
	Use:   "countdown <duration>",
	Short: "Count down from a duration",
	Long: `Count down from a duration such as "5m", "1h 30m", "90" (seconds) or "1:30".

Keys: space pause/resume, r reset (paused at the full duration).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountdown(cmd, mode.Countdown, args)
	},
}

var timerCmd = &cobra.Command{
	Use:   "timer <duration>",
	Short: "Run a timer for a duration",
	Long:  `Run a timer; behaves like countdown.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCountdown(cmd, mode.Timer, args)
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Print the resolved configuration and a color preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDebug(cmd)
	},
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	logFile := setupLogging(false)
	defer func() {
		if logFile != nil {
			logFile.Close()
		}
	}()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(opts.logging)
		log.Printf("tlock %s: %s %s", version, cmd.Name(), strings.Join(args, " "))
	}

	if err := rootCmd.Execute(); err != nil {
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

// runCountdown parses the duration before the terminal is taken over
func runCountdown(cmd *cobra.Command, kind mode.Kind, args []string) error {
	d, err := parseDurationArgs(args)
	if err != nil {
		return err
	}
	return runMode(cmd, kind, d)
}

// parseDurationArgs joins the arguments so unquoted input like "5m 30s" works
func parseDurationArgs(args []string) (time.Duration, error) {
	return timing.ParseDuration(strings.Join(args, " "))
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default: <user config dir>/tlock/config.toml)")
	flags.BoolVarP(&opts.regenerate, "regenerate-default", "r", false, "Rewrite the configuration file with the defaults and exit")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation")
	flags.BoolVarP(&opts.watch, "watch", "w", false, "Reload the configuration file when it changes")
	flags.BoolVar(&opts.logging, "log", false, "Write a debug log to <user cache dir>/tlock/logs")
	flags.StringVar(&opts.color, "color", "auto", "Color mode: auto, truecolor, 256")

	rootCmd.AddCommand(chronoCmd)
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(debugCmd)
}
