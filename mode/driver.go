package mode

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tlock/config"
	"github.com/lixenwraith/tlock/render"
)

// ErrEventsClosed is returned by Run when the event source stops before quit
var ErrEventsClosed = errors.New("terminal event stream closed")

// Driver runs the frame loop for one mode. All state is owned by the loop
// goroutine; events and reloads arrive over channels.
type Driver struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	events   <-chan tcell.Event
	reloads  <-chan *config.Config
	cfg      *config.Config
	mode     Mode

	// Replaced in tests
	sleep func(time.Duration)
	wall  func() time.Time
}

// NewDriver creates a driver drawing m onto screen. events is typically
// terminal.PollEvents(screen, ..., done).
func NewDriver(screen tcell.Screen, events <-chan tcell.Event, cfg *config.Config, m Mode) *Driver {
	return &Driver{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		events:   events,
		cfg:      cfg,
		mode:     m,
		sleep:    time.Sleep,
		wall:     time.Now,
	}
}

// SetReloads installs a channel of replacement configs, applied at frame boundaries
func (d *Driver) SetReloads(reloads <-chan *config.Config) {
	d.reloads = reloads
}

// Config returns the configuration currently in effect
func (d *Driver) Config() *config.Config {
	return d.cfg
}

// Run loops until Ctrl-C
func (d *Driver) Run() error {
	for {
		quit, err := d.drainEvents()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("quit requested")
			return nil
		}

		d.applyReload()

		width, height := d.screen.Size()
		d.mode.Update(width, height)

		d.screen.Clear()
		d.mode.Render(&Frame{
			Renderer:   d.renderer,
			Color:      d.cfg.Color.Value(),
			Now:        d.wall(),
			TimeFormat: d.cfg.TimeFormat,
			DateFormat: d.cfg.DateFormat,
		})
		d.cfg.Color.Update()
		d.screen.Show()

		d.sleep(FrameInterval(d.cfg.FPS))
	}
}

// drainEvents handles every queued event without blocking
func (d *Driver) drainEvents() (quit bool, err error) {
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				if quit {
					return true, nil
				}
				return false, ErrEventsClosed
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isInterrupt(ev) {
					quit = true
					continue
				}
				d.mode.HandleKey(ev)
			case *tcell.EventResize:
				d.screen.Sync()
			}
		default:
			return quit, nil
		}
	}
}

// applyReload swaps in the newest pending config, if any
func (d *Driver) applyReload() {
	if d.reloads == nil {
		return
	}

	for {
		select {
		case cfg := <-d.reloads:
			if cfg != nil {
				d.cfg = cfg
				log.Printf("config reloaded: fps=%d colors=%d", cfg.FPS, cfg.Color.Len())
			}
		default:
			return
		}
	}
}

// FrameInterval converts frames per second into the sleep between frames,
// truncated to whole milliseconds
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	return time.Duration(1000/fps) * time.Millisecond
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0
}
