// Package writers turns edited records into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (FASTA wrapping, JSON/JSONL).
//   • The edit core stays domain-only; batch stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
