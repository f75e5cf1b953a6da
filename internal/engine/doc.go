// Package engine interprets a validated optimizer sequence against one Yul
// source, invoking the compiler once per emitted step and producing an
// ordered stream of snapshots.
//
// The interpreter is a stack machine. Scanning the sequence left to right,
// step letters extend the cumulative prefix and trigger a compilation;
// brackets push and pop loop frames that re-execute their body until the
// optimized IR stops changing or the iteration cap is reached. The frame
// stack is an explicit slice, so arbitrarily nested sequences cannot exhaust
// the call stack.
//
// Execution is strictly sequential: at most one compiler subprocess is in
// flight at any time, and snapshots are emitted in index order through a
// caller-supplied callback. A fatal error aborts the remaining scan;
// snapshots already emitted stand.
package engine
