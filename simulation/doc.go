// Package simulation drives the core engine through time: each tick asks a
// motion.Model for new sensor positions, rebuilds the Topology, classifies
// the resulting statechange.StateChange, and either commits the implied
// labelupdate.LabelUpdate or bisects the tick recursively until it lands on
// an atomic transition (spec.md §4.8). The core itself never touches time,
// motion, or region geometry; this package is where those concerns meet it.
package simulation
