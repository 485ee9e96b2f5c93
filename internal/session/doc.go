// Package session drives the interactive numex programs.
//
// Exponential reads x and N, prints the fixed, auto-stopping and stable
// approximations of eˣ, compares each with math.Exp and finishes with the
// probe table. VectorIteration reads a square matrix once and then answers
// (u⁰, n) queries with u⁽ⁿ⁾ = Aⁿ·u⁰ until n ≤ 0 or the input ends.
//
// Both sessions read through prompt.Reader, write through report.Printer and
// check the context between steps, so a cancelled command stops at the next
// read.
package session
