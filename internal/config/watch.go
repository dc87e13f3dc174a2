package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch re-reads the config file whenever it changes and hands every valid
// result to onChange. Invalid edits are reported to onError and otherwise
// ignored, so the previous configuration stays in effect.
func Watch(v *viper.Viper, onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		handleChange(v, e, onChange, onError)
	})
	v.WatchConfig()
}

// handleChange runs after viper has re-read the file for e.
func handleChange(v *viper.Viper, e fsnotify.Event, onChange func(*Config), onError func(error)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	cfg, err := LoadFrom(v)
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	onChange(cfg)
}
