// Package labelupdate classifies a statechange.StateChange's case tuple into
// one member of the closed catalogue of atomic transitions spec.md §4.6
// documents, and computes the cycle-label assignments that transition
// implies. The labelling package applies the result; labelupdate never
// mutates a labelling itself, which is why Lookup is a read-only interface
// rather than an import of the labelling package (that would be circular:
// labelling.Update consumes a LabelUpdate).
package labelupdate
