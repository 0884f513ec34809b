// Package metrics provides application-level counters using stdlib expvar.
// Counters are automatically exported on the /debug/vars HTTP endpoint
// when net/http/pprof is imported in the main binary.
package metrics

import "expvar"

// Operation counters.
var (
	ExtractTotal      = expvar.NewInt("hallgraph_extract_total")
	RecordsAccepted   = expvar.NewInt("hallgraph_records_accepted_total")
	UnknownTypeDrops  = expvar.NewInt("hallgraph_unknown_type_drops_total")
	StructuralRejects = expvar.NewInt("hallgraph_structural_rejects_total")
	RuleRejects       = expvar.NewInt("hallgraph_rule_rejects_total")
	NodesWritten      = expvar.NewInt("hallgraph_nodes_written_total")
	EdgesWritten      = expvar.NewInt("hallgraph_edges_written_total")
	EdgesRejected     = expvar.NewInt("hallgraph_edges_rejected_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }
