/*
File   : aoi/internal/interp/eval_controls.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package interp

import "github.com/akashmaji946/aoi/internal/object"

// controlResult is the distinguished non-local signal a statement's
// execution can produce besides a plain error — spec.md §9's redesign
// note against the source language's string-encoded return value. A nil
// *controlResult means "ran to completion, no unwind in progress";
// returning=true means a `return` is propagating outward and every
// intervening block must still restore its own environment before
// passing the signal further up (see execBlock in eval_statements.go).
type controlResult struct {
	returning bool
	value     object.Value
}
