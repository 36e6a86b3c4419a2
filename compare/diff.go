package compare

import (
	"fmt"
	"strings"

	"github.com/your-org/pfcp/ie"
)

// DifferenceKind distinguishes a header-field difference from an IE
// difference inside a Diff's entries.
type DifferenceKind int

const (
	DifferenceHeaderField DifferenceKind = iota
	DifferenceIe
)

// Difference is one entry in a Diff: either a header field that disagreed
// or an IE that didn't match between the two messages.
type Difference struct {
	Kind         DifferenceKind
	Field        string // set when Kind == DifferenceHeaderField
	IeType       ie.IeType
	Reason       MismatchReason
	LeftPayload  []byte // only populated when Options.IncludePayloadInDiff
	RightPayload []byte
}

// Diff is a detailed, human-readable record of every difference a
// Comparator found, produced only when Options.WithDetailedDiff is set.
type Diff struct {
	Differences []Difference
}

// Len reports the number of recorded differences.
func (d *Diff) Len() int { return len(d.Differences) }

// Summary renders a one-line-per-difference overview.
func (d *Diff) Summary() string {
	var b strings.Builder
	for _, diff := range d.Differences {
		if diff.Kind == DifferenceHeaderField {
			fmt.Fprintf(&b, "header.%s differs\n", diff.Field)
			continue
		}
		fmt.Fprintf(&b, "IE %s: %s\n", diff.IeType, diff.Reason)
	}
	return b.String()
}

// String renders the diff as a YAML-ish block listing, with the raw
// payload hex where either side has one; Summary, by contrast, prints one
// plain line per difference. This module has no YAML dependency wired into
// the decode path itself, and a line-oriented dump is all a human
// comparing two captures needs.
func (d *Diff) String() string {
	var b strings.Builder
	b.WriteString("differences:\n")
	for _, diff := range d.Differences {
		if diff.Kind == DifferenceHeaderField {
			fmt.Fprintf(&b, "  - field: header.%s\n", diff.Field)
			continue
		}
		fmt.Fprintf(&b, "  - ie: %s\n    reason: %s\n", diff.IeType, diff.Reason)
		if diff.LeftPayload != nil || diff.RightPayload != nil {
			fmt.Fprintf(&b, "    left: %x\n    right: %x\n", diff.LeftPayload, diff.RightPayload)
		}
	}
	return b.String()
}
