// Package wordlist implements the planner's process-wide text-
// substitution state: named variable lists, each with its own advancing
// index, consulted while preprocessing text-bearing nodes ("{name}"
// tokens in a label get replaced with that variable's current value).
//
// The wordlist has a push/pop frame lifecycle scoped to one preprocess
// pass: Push returns a release function that restores the prior frame,
// so a caller can `defer release()` around one placement's preprocessing
// rather than manually pairing Push/Pop calls.
package wordlist
