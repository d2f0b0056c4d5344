// Package statechange diffs two topology.Topology snapshots by dimension and
// by boundary cycle, and reduces that diff to a case tuple: the closed
// catalogue labelupdate.Build dispatches on to decide which atomic
// transition (if any) occurred between the two snapshots.
package statechange
