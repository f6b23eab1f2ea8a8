/*
File   : aoi/internal/guard/guard.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package guard implements the input-validation guards spec.md §6
// requires ahead of every run_code invocation in server mode: a keyword
// denylist and a maximum-numeric-literal bound. Both run on raw source
// text, before lexing, so a rejected script never reaches the
// lexer/parser/evaluator pipeline at all.
package guard

import (
	"fmt"
	"strconv"
	"strings"
)

const numericLimit = 148

// Check rejects src if it contains the disallowed `scan` keyword or any
// decimal digit run whose value exceeds limit. Pass 0 for limit to use
// the default of 148 (spec.md §6).
func Check(src string, limit int) error {
	if limit == 0 {
		limit = numericLimit
	}

	if strings.Contains(src, "scan") {
		return fmt.Errorf("Error: Usage of 'scan' keyword is not allowed.")
	}

	if text, ok := firstOffendingRun(src, limit); ok {
		return fmt.Errorf("Error: Numeric value '%s' exceeds the limit of %d.", text, limit)
	}

	return nil
}

// firstOffendingRun scans src for maximal runs of decimal digits and
// returns the first one (by source position) whose parsed value exceeds
// limit. Per spec.md §6, every maximal digit run in the source is
// checked; Check stops at the first offender.
func firstOffendingRun(src string, limit int) (text string, found bool) {
	i := 0
	for i < len(src) {
		if !isDigit(src[i]) {
			i++
			continue
		}
		start := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}
		run := src[start:i]
		// run holds only digits, so Atoi can fail only by overflowing int,
		// and such a value exceeds any limit.
		n, err := strconv.Atoi(run)
		if err != nil || n > limit {
			return run, true
		}
	}
	return "", false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
