// Package engine implements the Truncate core rules engine.
//
// This package contains the deterministic state machine for Truncate, a
// two-player word-battle game played on a small terrain board:
//   - Board: squares tagged Water, Land, Occupied, Artifact, or Town.
//   - Bag/Hand: a seeded, reproducible tile-letter economy.
//   - Judge: a read-only wordlist oracle.
//   - Extractor: enumerates the words a placed letter belongs to.
//   - Battle: resolves combat between touching opposing words.
//   - Truncator: removes tiles no longer connected to their artifact.
//   - Clock: per-player time budgets charged on each applied move.
//   - GameState: ties all of the above together behind a single
//     Apply(move) entry point.
//
// The engine is pure and single-threaded: GameState is never mutated
// except through Apply, Apply either succeeds and returns an Event or
// fails and leaves state untouched, and no wall-clock or random calls
// happen: elapsed time is passed in by the caller of Apply, and every
// letter comes from a bag seeded explicitly. This is what lets server and client reproduce the same game
// bit-for-bit.
package engine
