package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the decoding target for a whole run file.
type fileRoot struct {
	Input     string           `hcl:"input"`
	Output    string           `hcl:"output,optional"`
	Start     int              `hcl:"start"`
	Engine    string           `hcl:"engine,optional"`
	Log       *logBlock        `hcl:"log,block"`
	Mutations []*mutationBlock `hcl:"mutation,block"`
}

// logBlock is the optional log { ... } block.
type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// mutationBlock is one mutation "<kind>" { ... } block.
type mutationBlock struct {
	Kind   string `hcl:"kind,label"`
	From   int    `hcl:"from"`
	To     int    `hcl:"to"`
	Weight *int64 `hcl:"weight,optional"`
}

// Load reads and decodes the run file at path, exposing the process
// environment as env.<NAME>.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(src, path, environ())
}

// Parse decodes HCL source into a validated Config. filename is used in
// diagnostics only; env backs the env.<NAME> variables.
func Parse(src []byte, filename string, env map[string]string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	cfg.Input = root.Input
	cfg.Output = root.Output
	cfg.Start = root.Start
	if root.Engine != "" {
		cfg.Engine = root.Engine
	}
	if root.Log != nil {
		if root.Log.Level != "" {
			cfg.LogLevel = root.Log.Level
		}
		if root.Log.Format != "" {
			cfg.LogFormat = root.Log.Format
		}
	}

	for i, mb := range root.Mutations {
		m := Mutation{Kind: mb.Kind, From: mb.From, To: mb.To}
		if mb.Weight != nil {
			m.Weight = *mb.Weight
		} else if mb.Kind == MutationAdd || mb.Kind == MutationUpdate {
			return nil, fmt.Errorf("%w: %s: mutation #%d (%s %d-%d) needs a weight", ErrInvalid, filename, i+1, mb.Kind, mb.From, mb.To)
		}
		cfg.Mutations = append(cfg.Mutations, m)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// evalContext exposes env as an object variable named "env".
func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}

// environ returns the process environment as a map.
func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			out[k] = v
		}
	}

	return out
}
