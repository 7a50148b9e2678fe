// Package selftest provides the boot-time diagnostic harness: a registry of
// named check units, an assertion primitive that tallies pass/fail outcomes,
// and a runner that executes every unit and aggregates the results.
//
// Units register themselves during process initialization (typically from an
// init function) and carry no arguments; assertions made while a unit runs
// are attributed to that unit. Assertions never abort: a failed check is
// recorded and execution continues, so one run surfaces the complete set of
// defects. The harness is single-threaded by construction — it runs before
// any concurrent machinery is assumed to exist.
package selftest

import (
	"runtime"
	"strings"
)

// Unit is a named, independently registered check routine.
// Units are created once at process initialization and are immutable.
type Unit struct {
	Name string
	Exec func()
}

// Failure records one failed assertion: where the check lives in source and,
// when the caller supplied one, a short description of the expression.
type Failure struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Desc string `json:"desc,omitempty"`
	Unit string `json:"unit"`
}

// Tally counts assertions for one run. Total >= Failed >= 0 always;
// Failed == 0 is the sole success condition.
type Tally struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

// UnitResult is the per-unit slice of a run's tally.
type UnitResult struct {
	Name  string `json:"name"`
	Tally Tally  `json:"tally"`
}

// Summary aggregates one full run.
type Summary struct {
	Units    []UnitResult `json:"units"`
	Tally    Tally        `json:"tally"`
	Failures []Failure    `json:"failures,omitempty"`
}

// OK reports whether the run passed.
func (s Summary) OK() bool { return s.Tally.Failed == 0 }

var registry []Unit

// run state, reset by runUnits. Mutated only by the assertion primitive;
// there is exactly one run in flight at a time.
var (
	tally    Tally
	failures []Failure
	active   string
)

// Register adds a unit to the registry. Call from an init function; the
// registry order is the (deterministic) package initialization order.
func Register(name string, exec func()) {
	registry = append(registry, Unit{Name: name, Exec: exec})
}

// Units returns a copy of the registry.
func Units() []Unit {
	out := make([]Unit, len(registry))
	copy(out, registry)
	return out
}

// Ok records the outcome of one boolean check, attributing it to the
// caller's file and line. It never aborts; execution always continues.
func Ok(cond bool) {
	file, line := caller(2)
	record(cond, file, line, "")
}

// Okf is Ok with a short description of the checked expression, included in
// the failure record when cond is false.
func Okf(cond bool, desc string) {
	file, line := caller(2)
	record(cond, file, line, desc)
}

// OkAt records the outcome of one boolean check against an explicitly
// supplied source location. Used when the check is evaluated inside a helper
// and the logical call site must be threaded through.
func OkAt(cond bool, file string, line int) {
	record(cond, file, line, "")
}

// OkAtf is OkAt with an expression description.
func OkAtf(cond bool, file string, line int, desc string) {
	record(cond, file, line, desc)
}

func record(cond bool, file string, line int, desc string) {
	tally.Total++
	if cond {
		return
	}
	tally.Failed++
	failures = append(failures, Failure{File: file, Line: line, Desc: desc, Unit: active})
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return file, line
}

// Run executes every registered unit exactly once, in registry order, and
// returns the aggregate summary. It never stops early on failure.
func Run() Summary {
	return runUnits(registry)
}

// RunUnits executes an explicit set of units without touching the registry.
// Sibling packages use it for ad-hoc and fault-injection runs.
func RunUnits(units []Unit) Summary {
	return runUnits(units)
}

// RunMatching runs only the units whose name contains substr. An empty
// substr matches every unit.
func RunMatching(substr string) Summary {
	var selected []Unit
	for _, u := range registry {
		if substr == "" || strings.Contains(u.Name, substr) {
			selected = append(selected, u)
		}
	}
	return runUnits(selected)
}

func runUnits(units []Unit) Summary {
	tally = Tally{}
	failures = nil

	var results []UnitResult
	for _, u := range units {
		before := tally
		active = u.Name
		u.Exec()
		active = ""
		results = append(results, UnitResult{
			Name: u.Name,
			Tally: Tally{
				Total:  tally.Total - before.Total,
				Failed: tally.Failed - before.Failed,
			},
		})
	}

	return Summary{Units: results, Tally: tally, Failures: failures}
}
