package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/errwrap"

	"github.com/katalvlaran/lvpath/bellmanford"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/edgelist"
	"github.com/katalvlaran/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/internal/ctxlog"
	"github.com/katalvlaran/lvpath/shortest"
)

// Phase names used in the Report and the printed summary.
const (
	PhaseInitial = "initial"
	PhaseMutated = "mutated"
)

// printDistancesUpTo is the largest vertex count whose full distance map is
// printed in the summary.
const printDistancesUpTo = 32

// EngineRun is the outcome of one engine invocation.
type EngineRun struct {
	Phase         string
	Engine        string
	Result        *shortest.Result // nil when NegativeCycle is set
	NegativeCycle bool
	Elapsed       time.Duration
}

// Report collects everything a session produced.
type Report struct {
	Load     edgelist.Stats
	Exported int // records written to Output, 0 when no export was requested
	Applied  int // mutations applied
	Runs     []EngineRun
	Graph    *core.Graph
}

// Find returns the run for phase and engine, or nil.
func (r *Report) Find(phase, engine string) *EngineRun {
	for i := range r.Runs {
		if r.Runs[i].Phase == phase && r.Runs[i].Engine == engine {
			return &r.Runs[i]
		}
	}

	return nil
}

// Run executes the session described by the App's configuration.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	cfg := a.config

	g := core.NewGraph()
	rep := &Report{Graph: g}

	started := time.Now()
	st, err := edgelist.Load(ctx, cfg.Input, g)
	if err != nil {
		return nil, errwrap.Wrapf("Failed to load edge list: {{err}}", err)
	}
	rep.Load = st
	a.logger.Info("Graph loaded.", "path", cfg.Input, "nodes", g.VertexCount(), "records", g.EdgeCount(),
		"skipped", st.Skipped, "missing", st.Missing, "elapsed", time.Since(started))
	fmt.Fprintf(a.outW, "loaded %s: nodes=%d records=%d skipped=%d\n", cfg.Input, g.VertexCount(), g.EdgeCount(), st.Skipped)

	if cfg.Output != "" {
		n, err := edgelist.Export(ctx, cfg.Output, g)
		if err != nil {
			return nil, errwrap.Wrapf("Failed to export edge list: {{err}}", err)
		}
		rep.Exported = n
		a.logger.Info("Graph exported.", "path", cfg.Output, "records", n)
		fmt.Fprintf(a.outW, "exported %s: records=%d\n", cfg.Output, n)
	}

	if err := a.solve(ctx, g, PhaseInitial, rep); err != nil {
		return nil, err
	}

	if len(cfg.Mutations) == 0 {
		a.logger.Debug("App.Run method finished.")
		return rep, nil
	}

	for _, m := range cfg.Mutations {
		applyMutation(g, m)
		rep.Applied++
		a.logger.Debug("Mutation applied.", "kind", m.Kind, "from", m.From, "to", m.To, "weight", m.Weight)
	}
	a.logger.Info("Mutations applied.", "count", rep.Applied, "nodes", g.VertexCount(), "records", g.EdgeCount())
	fmt.Fprintf(a.outW, "applied %d mutations: nodes=%d records=%d\n", rep.Applied, g.VertexCount(), g.EdgeCount())

	if err := a.solve(ctx, g, PhaseMutated, rep); err != nil {
		return nil, err
	}

	a.logger.Debug("App.Run method finished.")
	return rep, nil
}

// applyMutation performs one configured edit on g. Edits on missing edges are
// silent no-ops in core.
func applyMutation(g *core.Graph, m config.Mutation) {
	switch m.Kind {
	case config.MutationAdd:
		g.AddEdge(m.From, m.To, m.Weight)
	case config.MutationRemove:
		g.RemoveEdge(m.From, m.To)
	case config.MutationUpdate:
		g.UpdateEdgeWeight(m.From, m.To, m.Weight)
	}
}

// solve runs the configured engines on g and records one EngineRun each.
func (a *App) solve(ctx context.Context, g *core.Graph, phase string, rep *Report) error {
	cfg := a.config
	logger := ctxlog.FromContext(ctx).With("phase", phase, "source", cfg.Start)
	if cfg.Engine == config.EngineNone {
		return nil
	}
	if !g.HasVertex(cfg.Start) {
		logger.Warn("Start node is not in the graph, every other node is unreachable.")
	}

	var dj, bf *shortest.Result
	if cfg.RunsDijkstra() {
		started := time.Now()
		res, err := dijkstra.Dijkstra(g, cfg.Start)
		if err != nil {
			return errwrap.Wrapf("Dijkstra failed: {{err}}", err)
		}
		run := EngineRun{Phase: phase, Engine: config.EngineDijkstra, Result: res, Elapsed: time.Since(started)}
		a.record(logger, rep, run)
		dj = res
	}

	if cfg.RunsBellmanFord() {
		started := time.Now()
		res, err := bellmanford.BellmanFord(g, cfg.Start)
		run := EngineRun{Phase: phase, Engine: config.EngineBellmanFord, Result: res, Elapsed: time.Since(started)}
		switch {
		case errors.Is(err, bellmanford.ErrNegativeCycle):
			run.NegativeCycle = true
			logger.Warn("Negative-weight cycle detected.", "engine", run.Engine, "detail", err.Error())
		case err != nil:
			return errwrap.Wrapf("Bellman-Ford failed: {{err}}", err)
		}
		a.record(logger, rep, run)
		bf = res
	}

	if dj != nil && bf != nil {
		if shortest.DistancesEqual(dj, bf) {
			logger.Info("Engines agree.")
		} else {
			logger.Warn("Engines disagree; the graph likely holds negative weights.")
		}
	}

	return nil
}

// record appends run to rep, logs it and prints its summary line.
func (a *App) record(logger *slog.Logger, rep *Report, run EngineRun) {
	rep.Runs = append(rep.Runs, run)

	if run.NegativeCycle {
		fmt.Fprintf(a.outW, "%s %s: negative cycle detected\n", run.Phase, run.Engine)
		return
	}

	nodes := len(run.Result.Dist)
	reached, farthest := summarize(run.Result)
	logger.Info("Shortest paths computed.", "engine", run.Engine, "reached", reached, "nodes", nodes,
		"farthest", farthest, "elapsed", run.Elapsed)
	fmt.Fprintf(a.outW, "%s %s: reached=%d/%d farthest=%d\n", run.Phase, run.Engine, reached, nodes, farthest)
	if nodes <= printDistancesUpTo {
		fmt.Fprintf(a.outW, "  dist %s\n", run.Result)
	}
}

// summarize counts reachable nodes and returns the largest finite distance.
func summarize(res *shortest.Result) (reached int, farthest int64) {
	for _, v := range res.Nodes() {
		d, ok := res.Distance(v)
		if !ok {
			continue
		}
		reached++
		if d > farthest {
			farthest = d
		}
	}

	return reached, farthest
}
