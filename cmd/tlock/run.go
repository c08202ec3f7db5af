package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/tlock/audio"
	"github.com/lixenwraith/tlock/config"
	"github.com/lixenwraith/tlock/debug"
	"github.com/lixenwraith/tlock/mode"
	"github.com/lixenwraith/tlock/terminal"
	"github.com/lixenwraith/tlock/timing"
)

const (
	eventBuffer = 64
	politeBye   = "CTRL-C pressed, bye!"
)

// runMode takes over the terminal and drives kind until CTRL-C
func runMode(cmd *cobra.Command, kind mode.Kind, d time.Duration) error {
	path, done, err := prepareConfig(&opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil || done {
		return err
	}

	cfg, reloads, err := loadConfig(path, opts.watch, config.Options{})
	if err != nil {
		return err
	}

	colorMode, err := terminal.ResolveColorMode(opts.color)
	if err != nil {
		return err
	}

	var alarm mode.Alarm
	if cfg.Alarm && kind.NeedsDuration() {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the countdown still shows [FINISHED]
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			alarm = sm
		}
	}

	m, err := mode.New(kind, timing.NewMonotonicTimeProvider(), d, alarm)
	if err != nil {
		return err
	}

	log.Printf("starting %s mode, config %s, color %s", kind, path, colorMode)

	final, err := drive(colorMode, cfg, reloads, m)
	if err != nil {
		return err
	}

	if final.BePolite {
		fmt.Fprintln(cmd.OutOrStdout(), politeBye)
	}
	return nil
}

// drive owns the screen for the duration of the frame loop and returns the
// config in effect when it ended
func drive(colorMode terminal.ColorMode, cfg *config.Config, reloads <-chan *config.Config, m mode.Mode) (*config.Config, error) {
	screen, err := terminal.Open(colorMode)
	if err != nil {
		return nil, err
	}
	defer screen.Fini()

	// Closed before Fini so a poller stuck on a full buffer exits
	done := make(chan struct{})
	defer close(done)

	driver := mode.NewDriver(screen, terminal.PollEvents(screen, eventBuffer, done), cfg, m)
	if reloads != nil {
		driver.SetReloads(reloads)
	}

	if err := driver.Run(); err != nil {
		return nil, err
	}
	return driver.Config(), nil
}

// runDebug prints the configuration without taking over the terminal
func runDebug(cmd *cobra.Command) error {
	path, done, err := prepareConfig(&opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil || done {
		return err
	}

	cfg, err := config.Load(path, config.Options{NoGradientLoop: true})
	if err != nil {
		return err
	}

	colorMode, err := terminal.ResolveColorMode(opts.color)
	if err != nil {
		return err
	}
	return debug.Print(cmd.OutOrStdout(), version, cfg, colorMode == terminal.ColorMode256)
}

// loadConfig loads path once, or starts watching it when watch is set
func loadConfig(path string, watch bool, o config.Options) (*config.Config, <-chan *config.Config, error) {
	if !watch {
		cfg, err := config.Load(path, o)
		return cfg, nil, err
	}
	return config.Watch(path, o)
}

// prepareConfig resolves the config path, generating the default file when
// it is missing. With --regenerate-default it rewrites the file and reports
// done, in which case the caller must not continue.
func prepareConfig(o *options, in io.Reader, out io.Writer) (path string, done bool, err error) {
	path = o.configPath
	generated := false
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return "", false, err
		}
		if generated, err = config.EnsureDefault(path); err != nil {
			return "", false, err
		}
		if generated {
			log.Printf("default config written to %s", path)
		}
	}

	if !o.regenerate {
		return path, false, nil
	}

	if _, statErr := os.Stat(path); statErr == nil && !generated && !o.yes {
		fmt.Fprintf(out, "A config file is already located at %s\n", path)
		ok, err := confirm(in, out, "Do you really want to recreate it?")
		if err != nil {
			return "", true, err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return path, true, nil
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return "", true, err
	}
	fmt.Fprintln(out, "Done.")
	return path, true, nil
}
