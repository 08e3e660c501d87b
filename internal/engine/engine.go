package engine

import (
	"context"
	"fmt"

	"github.com/boolmat/cnotbfs/internal/bfs"
	"github.com/boolmat/cnotbfs/internal/bitmatrix"
	"github.com/boolmat/cnotbfs/internal/canon"
	"github.com/boolmat/cnotbfs/internal/trace"
)

// Engine is the runtime-parameterized replacement for the original's
// process-wide globals: one value per run, holding the canonicalizer and
// controller built from Config, instead of N/SWAP/NAUTY/... compile-time
// defines and mutable file-scope state (spec §9 Design Notes).
type Engine struct {
	cfg  Config
	can  canon.Canonicalizer
	ctrl *bfs.Controller
	poly *bfs.PolyAccumulator
}

// New builds an Engine from cfg. reporter may be nil to suppress progress
// output (as in tests); it receives the same "Depth d (2^s): ..." lines the
// original printed to stdout.
func New(cfg Config, reporter bfs.Reporter) (*Engine, error) {
	can, err := canon.New(canon.Config{N: cfg.N, Swap: cfg.Swap, Nauty: cfg.Nauty})
	if err != nil {
		return nil, fmt.Errorf("%w: building canonicalizer: %w", ErrConfig, err)
	}

	var poly *bfs.PolyAccumulator
	if cfg.Poly {
		poly = bfs.NewPolyAccumulator(cfg.N)
	}

	bcfg := bfs.Config{
		N:       cfg.N,
		Swap:    cfg.Swap,
		Poly:    cfg.Poly,
		Extra:   cfg.Extra,
		Max:     cfg.Max,
		Beat:    cfg.Beat,
		Workers: cfg.Workers,
		Probe:   cfg.probeStrategy(),
		Hasher:  cfg.hasher(),
	}

	return &Engine{
		cfg:  cfg,
		can:  can,
		ctrl: bfs.NewController(bcfg, can, poly, reporter),
		poly: poly,
	}, nil
}

// EnumerateResult reports the outcome of a goal-less full enumeration.
type EnumerateResult struct {
	Result bfs.Result
	Poly   []uint64 // nil unless Config.Poly was set
}

// Enumerate runs the forward-only BFS from start with no goal, exhausting
// the reachable orbit space (or stopping at Config.Limit), the behavior of
// the original's generate_bfs.
func (e *Engine) Enumerate(ctx context.Context, start bitmatrix.Matrix) (EnumerateResult, error) {
	_, result, err := e.ctrl.RunForward(ctx, start, nil, e.cfg.Limit)
	if err != nil {
		return EnumerateResult{}, err
	}

	out := EnumerateResult{Result: result}
	if e.poly != nil {
		out.Poly = e.poly.Coefficients()
	}

	return out, nil
}

// CircuitResult reports the outcome of a goal-directed search.
type CircuitResult struct {
	Bidir bfs.BidirResult
	Trace trace.Result // zero value unless Bidir.Found
}

// FindCircuit runs the bidirectional BFS from start to goal and, if found,
// reconstructs the connecting circuit via internal/trace. This is the
// original's bidirectional + trace_back_middle.
func (e *Engine) FindCircuit(ctx context.Context, start, goal bitmatrix.Matrix) (CircuitResult, error) {
	fwd, bwd, result, err := e.ctrl.RunBidirectional(ctx, start, goal, e.cfg.Limit)
	if err != nil {
		return CircuitResult{}, err
	}

	if !result.Found {
		return CircuitResult{Bidir: result}, nil
	}

	tr, err := trace.Middle(start, result.Witness, goal, fwd, bwd, result.ForwardDepth, result.BackwardDepth, e.can, e.cfg.Swap, e.cfg.N)
	if err != nil {
		return CircuitResult{}, err
	}

	return CircuitResult{Bidir: result, Trace: tr}, nil
}

// Investigation is the result of inspecting a single matrix, the supplemented
// investigate() debug dump from original_source/src/matrix_cnot.cpp.
type Investigation struct {
	Representative bitmatrix.Matrix
	OrbitSize      uint64
	Essential      int
	RowPerm        bitmatrix.Perm
	ColPerm        bitmatrix.Perm
}

// Investigate canonicalizes m and reports its orbit size, essential-index
// count, and the permutation(s) carrying it to its representative.
func (e *Engine) Investigate(m bitmatrix.Matrix) (Investigation, error) {
	rep, orbitSize, err := e.can.Canonicalize(m)
	if err != nil {
		return Investigation{}, err
	}

	_, rowPerm, colPerm, err := e.can.RepresentativePerm(m)
	if err != nil {
		return Investigation{}, err
	}

	return Investigation{
		Representative: rep,
		OrbitSize:      orbitSize,
		Essential:      bitmatrix.CountEssential(m, e.cfg.N),
		RowPerm:        rowPerm,
		ColPerm:        colPerm,
	}, nil
}

// Config returns the Engine's resolved configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
