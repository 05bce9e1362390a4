// Package edit contains the sequence edit core. It never imports fasta, writers,
// cli or app code; keep it domain-only.
//
// Coordinates handed to the engine are 1-based and inclusive. Every edit
// returns a new sequence; the input is never modified.
package edit
