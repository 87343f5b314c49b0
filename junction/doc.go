// Package junction solves the junction-box wiring puzzle: a list of boxes at
// integer 3-D positions is wired together shortest-cable-first.
//
// Input is one "x,y,z" triple per line. Blank lines are ignored.
//
//   - Part 1 connects the Connections closest pairs (already-joined pairs
//     still count) and multiplies the sizes of the Top largest circuits.
//   - Part 2 keeps connecting the closest pair of boxes that are still on
//     different circuits until only one circuit remains, and multiplies the
//     X coordinates of the two boxes joined by that final cable.
//
// The clustering itself lives in package cluster; this package only parses
// and assembles the answers.
package junction
