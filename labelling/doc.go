// Package labelling holds the partial map from boundary cycle to "might
// still hide an intruder" that the rest of this module tracks over time.
// New seeds it from a topology.Topology's initial state; Update advances it
// one labelupdate.LabelUpdate at a time, atomically — either the whole
// update applies or none of it does, and an invalid update never leaves the
// labelling half-mutated.
package labelling
