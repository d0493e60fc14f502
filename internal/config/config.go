package config

import (
	"errors"
	"fmt"
	"strings"
)

// Engine names accepted by Config.Engine.
const (
	EngineDijkstra    = "dijkstra"
	EngineBellmanFord = "bellman-ford"
	EngineBoth        = "both"
	EngineNone        = "none" // load and export only
)

// Mutation kinds accepted by Mutation.Kind.
const (
	MutationAdd    = "add"
	MutationRemove = "remove"
	MutationUpdate = "update"
)

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds everything a driver run needs.
type Config struct {
	Input     string // edge-list file to load (gzip or plain text)
	Output    string // export target; empty disables export
	Start     int    // start node for both engines
	Engine    string // one of the Engine* constants
	LogLevel  string // debug | info | warn | error
	LogFormat string // text | json
	Mutations []Mutation
}

// Mutation is one graph change applied between the first and second engine runs.
type Mutation struct {
	Kind   string // one of the Mutation* constants
	From   int
	To     int
	Weight int64 // ignored for remove
}

// Default returns a Config with every optional field at its default.
func Default() Config {
	return Config{
		Engine:    EngineBoth,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// RunsDijkstra reports whether the priority-queue engine is selected.
func (c *Config) RunsDijkstra() bool {
	return c.Engine == EngineDijkstra || c.Engine == EngineBoth
}

// RunsBellmanFord reports whether the iterative-relaxation engine is selected.
func (c *Config) RunsBellmanFord() bool {
	return c.Engine == EngineBellmanFord || c.Engine == EngineBoth
}

// Validate normalizes case and checks every enumerated field.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", ErrInvalid)
	}

	c.Engine = strings.ToLower(c.Engine)
	switch c.Engine {
	case EngineDijkstra, EngineBellmanFord, EngineBoth, EngineNone:
	default:
		return fmt.Errorf("%w: engine %q must be one of %q, %q, %q, %q", ErrInvalid, c.Engine, EngineDijkstra, EngineBellmanFord, EngineBoth, EngineNone)
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.LogLevel)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log format %q must be 'text' or 'json'", ErrInvalid, c.LogFormat)
	}

	for i, m := range c.Mutations {
		switch m.Kind {
		case MutationAdd, MutationRemove, MutationUpdate:
		default:
			return fmt.Errorf("%w: mutation #%d: unknown kind %q", ErrInvalid, i+1, m.Kind)
		}
	}

	return nil
}
