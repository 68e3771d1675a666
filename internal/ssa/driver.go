package ssa

import (
	"fmt"

	"github.com/tliron/commonlog"

	"sassssa/internal/sir"
)

var log = commonlog.GetLogger("sassssa.ssa")

// maxIterations bounds the fixed-point loop. Non-convergence within
// this many full passes over the work list indicates corrupted IR or
// a bug in the algorithm, never a property of well-formed input
// (spec.md §7); the driver fails loudly rather than looping forever.
const maxIterations = 10000

// phiEntry records one pending φ: the version name assigned to it and
// the (predecessor, incoming-version) pairs that feed it, in
// predecessor order (spec.md §3, §4.3).
type phiEntry struct {
	version string
	incoming []incomingVersion
}

type incomingVersion struct {
	pred    *sir.BasicBlock
	version string
}

// Driver holds the transient per-function dataflow state: IN/OUT
// register maps and pending φ entries, live only for the duration of
// one ProcessFunction call (spec.md §3 "Dataflow state").
type Driver struct {
	in  map[*sir.BasicBlock]map[string]string
	out map[*sir.BasicBlock]map[string]string
	phi map[*sir.BasicBlock]map[string]phiEntry
}

// NewDriver creates a Driver with empty dataflow state for work.
func NewDriver(work []*sir.BasicBlock) *Driver {
	d := &Driver{
		in:  make(map[*sir.BasicBlock]map[string]string, len(work)),
		out: make(map[*sir.BasicBlock]map[string]string, len(work)),
		phi: make(map[*sir.BasicBlock]map[string]phiEntry, len(work)),
	}
	for _, b := range work {
		d.phi[b] = map[string]phiEntry{}
	}
	return d
}

// Phi returns the converged φ entries for block b (base register to
// phiEntry), for use by the φ-node synthesiser.
func (d *Driver) Phi(b *sir.BasicBlock) map[string]phiEntry {
	return d.phi[b]
}

// Run iterates the per-block renamer over work to a fixed point,
// implementing the loop of spec.md §4.3 exactly, including the entry
// block's re-processing exception.
func (d *Driver) Run(entry *sir.BasicBlock, work []*sir.BasicBlock) {
	iterations := 0
	changed := true
	for changed {
		changed = false
		iterations++
		if iterations > maxIterations {
			log.Errorf("ssa: fixed point did not converge after %d iterations, aborting", maxIterations)
			panic(fmt.Sprintf("ssa: dataflow did not converge after %d iterations (corrupted IR or algorithm bug)", maxIterations))
		}

		for _, b := range work {
			if d.processBlock(b, entry) {
				changed = true
			}
		}
	}
	log.Debugf("ssa: fixed point converged after %d iteration(s) over %d block(s)", iterations, len(work))
}

// processBlock recomputes IN[b], re-runs the per-block renamer when
// needed, and reports whether OUT[b] changed (spec.md §4.3's ProcessBB).
func (d *Driver) processBlock(b, entry *sir.BasicBlock) bool {
	newIn := d.computeIn(b)

	// A block that has never been processed always runs once, even when
	// its computed IN is empty.
	prevIn, seen := d.in[b]
	if b != entry && seen && mapsEqual(newIn, prevIn) {
		return false // input unchanged, output cannot change
	}

	d.in[b] = newIn
	curr := cloneMap(newIn)

	RenameBlock(b, curr)

	if !mapsEqual(curr, d.out[b]) {
		d.out[b] = curr
		return true
	}
	return false
}

// computeIn implements spec.md §4.3's compute_in: it derives IN[b]
// from predecessor OUT sets, recording a φ for any base register with
// two or more distinct predecessor contributions.
func (d *Driver) computeIn(b *sir.BasicBlock) map[string]string {
	if len(b.Preds) == 0 {
		return map[string]string{}
	}

	d.phi[b] = map[string]phiEntry{}

	versions := map[string][]incomingVersion{}
	var order []string
	for _, pred := range b.Preds {
		out, ok := d.out[pred]
		if !ok {
			continue // early iteration: predecessor not processed yet
		}
		for base, v := range out {
			if _, seen := versions[base]; !seen {
				order = append(order, base)
			}
			versions[base] = append(versions[base], incomingVersion{pred: pred, version: v})
		}
	}

	in := map[string]string{}
	for _, base := range order {
		contributions := versions[base]
		if len(contributions) == 1 {
			in[base] = contributions[0].version
			continue
		}
		phiVersion := phiVersionedName(base, b.Addr)
		in[base] = phiVersion
		d.phi[b][base] = phiEntry{version: phiVersion, incoming: contributions}
	}
	return in
}

func cloneMap(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
