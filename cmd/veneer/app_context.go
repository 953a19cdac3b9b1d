package main

import (
	"github.com/veneer-ui/veneer/internal/config"
	"github.com/veneer-ui/veneer/internal/engine"
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/registry"
	"github.com/veneer-ui/veneer/internal/tokens"
	"github.com/veneer-ui/veneer/internal/widgets"
)

// appContext carries the wired styling stack for one command invocation.
type appContext struct {
	theme   *config.Theme
	store   *tokens.Store
	factory *widgets.Factory
}

// newAppContext loads a theme (the built-in one when path is empty) and
// wires the token store, native registry, engine, and widget factory.
func newAppContext(themePath string, verbose bool, log *logger.Logger) (*appContext, error) {
	if verbose {
		verboseLog, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
		if err != nil {
			return nil, err
		}
		log = verboseLog
	}

	theme := config.Default()
	if themePath != "" {
		parsed, err := config.ParseTheme(themePath)
		if err != nil {
			return nil, err
		}
		theme = parsed
	}

	store, err := tokens.NewStore(theme, log)
	if err != nil {
		return nil, err
	}

	eng := engine.New(store, registry.New(log), log)

	return &appContext{
		theme:   theme,
		store:   store,
		factory: widgets.NewFactory(eng),
	}, nil
}
