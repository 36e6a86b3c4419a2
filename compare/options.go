// Package compare implements a configurable structural comparison between
// two decoded PFCP messages: exact byte comparison by default, with
// opt-in relaxations for sequence numbers, timestamp tolerance, a subset
// of IE types, and "does the left message's IE set appear in the right
// one" semantics. Translated from a builder-that-consumes-self API to
// Go's options-struct-plus-methods idiom, since idiomatic Go builders
// don't consume their receiver on every call.
package compare

import "github.com/your-org/pfcp/ie"

// OptionalIeMode controls how an IE present in one message but absent in
// the other affects the match result.
type OptionalIeMode int

const (
	// OptionalIeStrict requires every IE in either message to also be
	// present (and match) in the other. This is the default.
	OptionalIeStrict OptionalIeMode = iota
	// OptionalIeIgnoreMissing only compares IEs present in both messages,
	// and ignores anything present in just one.
	OptionalIeIgnoreMissing
	// OptionalIeRequireLeft requires every IE in the left message to be
	// present and matching in the right, but allows the right message to
	// carry additional IEs the left one lacks.
	OptionalIeRequireLeft
)

// Options configures a Comparator. The zero value is strict byte-exact
// comparison with no tolerances.
type Options struct {
	IgnoreSequence         bool
	IgnoreTimestamps       bool
	TimestampToleranceSecs uint32
	SemanticMode           bool
	OptionalIeMode         OptionalIeMode
	FocusIeTypes           []ie.IeType
	WithDetailedDiff       bool
	IncludePayloadInDiff   bool
}

func (o Options) focused(t ie.IeType) bool {
	if len(o.FocusIeTypes) == 0 {
		return true
	}
	for _, want := range o.FocusIeTypes {
		if want == t {
			return true
		}
	}
	return false
}
