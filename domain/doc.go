// Package domain supplies the region geometry the core explicitly treats as
// an external collaborator (spec.md §1: "domain geometry classes that
// produce fence sensors and perform wall reflections"). A Boundary clamps a
// mobile sensor back inside the patrolled region and reflects its velocity
// off the wall it hit; motion.Billiard and motion.RandomWalk use it, and
// motion.RunAndTumble uses it through the Billiard it wraps.
package domain
