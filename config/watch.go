package config

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path and keeps watching it. Each edit that resolves cleanly is
// delivered on the returned channel; only the newest unread config is kept.
// Edits that fail to resolve are logged and dropped.
func Watch(path string, opts Options) (*Config, <-chan *Config, error) {
	v, err := read(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := resolve(v, opts)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan *Config, 1)
	v.OnConfigChange(func(e fsnotify.Event) {
		handleChange(path, opts, out, e)
	})
	v.WatchConfig()

	return cfg, out, nil
}

// handleChange re-reads path from scratch so a half-written file never
// leaves stale settings behind
func handleChange(path string, opts Options, out chan *Config, e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}

	cfg, err := Load(path, opts)
	if err != nil {
		log.Printf("config reload of %s ignored: %v", e.Name, err)
		return
	}

	publish(out, cfg)
}

// publish replaces any unread config with cfg; out has a single producer
func publish(out chan *Config, cfg *Config) {
	for {
		select {
		case out <- cfg:
			return
		default:
			select {
			case <-out:
			default:
			}
		}
	}
}
