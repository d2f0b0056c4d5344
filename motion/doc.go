// Package motion supplies the movement rules the core treats as an external
// collaborator (spec.md §1: "motion models that decide how sensors move").
// A Model advances interior sensor positions by one tick; fence sensors
// never move and are never passed to a Model. Models that can carry a
// sensor outside the patrolled region consult a domain.Boundary to clamp
// position and reflect velocity, billiard-style.
package motion
