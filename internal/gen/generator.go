// Package gen orchestrates one generation pass: scan the pages tree, build
// the route tree and path set, render both modules, and write them out.
// Passes are serialized; triggers arriving while a pass runs are coalesced
// into exactly one follow-up pass.
package gen

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/routegen-dev/routegen/internal/config"
	"github.com/routegen-dev/routegen/internal/emit"
	"github.com/routegen-dev/routegen/internal/routes"
	"github.com/routegen-dev/routegen/internal/scanner"
)

// tracerName is the otel tracer name for generation spans.
const tracerName = "routegen"

// PassResult describes one completed generation pass.
type PassResult struct {
	// Routes is the number of route records generated.
	Routes int

	// Paths is the number of typed route paths generated.
	Paths int

	// Warnings are non-fatal convention problems from the builder.
	Warnings []string

	// Duration is how long the pass took.
	Duration time.Duration

	// Err is non-nil when the pass failed; no output was written.
	Err error
}

// Generator runs generation passes for one project configuration.
type Generator struct {
	cfg     *config.Config
	builder *routes.Builder
	tracer  trace.Tracer

	passMu sync.Mutex // serializes passes

	mu      sync.Mutex // guards running/pending
	running bool
	pending bool

	onPass func(PassResult)
}

// New creates a generator for cfg.
func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:     cfg,
		builder: routes.NewBuilder(),
		tracer:  otel.Tracer(tracerName),
	}
}

// OnPass sets the callback invoked after every pass, successful or not.
// Used by the dev server to drive reload broadcasts.
func (g *Generator) OnPass(fn func(PassResult)) {
	g.onPass = fn
}

// Generate runs a single pass to completion. Concurrent callers are
// serialized; two passes never write the output files at the same time.
func (g *Generator) Generate(ctx context.Context) PassResult {
	g.passMu.Lock()
	defer g.passMu.Unlock()

	start := time.Now()
	res := g.run(ctx)
	res.Duration = time.Since(start)

	recordPass(res)
	return res
}

// run performs the scan → build → emit → write pipeline. Any failure
// aborts before output is written.
func (g *Generator) run(ctx context.Context) PassResult {
	_, span := g.tracer.Start(ctx, "routegen.generate",
		trace.WithAttributes(attribute.String("routegen.pages_dir", g.cfg.PagesDir)))
	defer span.End()

	fail := func(err error) PassResult {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PassResult{Err: err}
	}

	tree, err := scanner.New(g.cfg.PagesDir, g.cfg.Extensions).Scan()
	if err != nil {
		return fail(err)
	}

	built, err := g.builder.Build(tree)
	if err != nil {
		return fail(err)
	}
	paths := routes.RoutePaths(tree)

	routesSrc, err := emit.Routes(built, emit.Options{
		PagesDir: g.cfg.PagesDir,
		OutFile:  g.cfg.OutFile,
	})
	if err != nil {
		return fail(err)
	}
	typesSrc := emit.PathType(paths)

	if err := emit.WriteFile(g.cfg.OutFile, routesSrc); err != nil {
		return fail(err)
	}
	if err := emit.WriteFile(g.cfg.TypesFile, typesSrc); err != nil {
		return fail(err)
	}

	routeCount := countRoutes(built.Routes)
	span.SetAttributes(
		attribute.Int("routegen.routes", routeCount),
		attribute.Int("routegen.paths", len(paths)),
	)
	span.SetStatus(codes.Ok, "")

	return PassResult{
		Routes:   routeCount,
		Paths:    len(paths),
		Warnings: built.Warnings,
	}
}

// Trigger requests a pass. If one is already running the request is
// coalesced: however many triggers arrive mid-pass, exactly one follow-up
// pass runs afterwards. Results are delivered through the OnPass callback.
func (g *Generator) Trigger(ctx context.Context) {
	g.mu.Lock()
	if g.running {
		g.pending = true
		g.mu.Unlock()
		return
	}
	g.running = true
	g.mu.Unlock()

	go func() {
		for {
			res := g.Generate(ctx)
			if g.onPass != nil {
				g.onPass(res)
			}

			g.mu.Lock()
			if !g.pending {
				g.running = false
				g.mu.Unlock()
				return
			}
			g.pending = false
			g.mu.Unlock()
		}
	}()
}

// countRoutes counts route records, nested ones included.
func countRoutes(nodes []*routes.RouteNode) int {
	count := 0
	for _, n := range nodes {
		count += 1 + countRoutes(n.Children)
	}
	return count
}
