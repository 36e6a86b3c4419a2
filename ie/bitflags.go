package ie

import "encoding/binary"

// ApplyActionFlags is a bitmask of the actions a FAR applies to packets
// it matches. Go has no bitflags-macro equivalent, so where the Rust
// reference uses a `bitflags!` type this module uses a plain named
// integer with const bit values and a Has helper — the same shape the
// teacher uses for its own flag fields elsewhere in the stack.
type ApplyActionFlags uint8

const (
	ApplyActionDrop    ApplyActionFlags = 1 << 0
	ApplyActionForward ApplyActionFlags = 1 << 1
	ApplyActionBuffer  ApplyActionFlags = 1 << 2
	ApplyActionNotifyCP ApplyActionFlags = 1 << 3
	ApplyActionDuplicate ApplyActionFlags = 1 << 4
)

// Has reports whether all bits in mask are set.
func (f ApplyActionFlags) Has(mask ApplyActionFlags) bool { return f&mask == mask }

type ApplyAction struct {
	Flags ApplyActionFlags
}

func (a ApplyAction) Marshal() Ie {
	return New(TypeApplyAction, []byte{byte(a.Flags)})
}

func UnmarshalApplyAction(payload []byte) (ApplyAction, error) {
	if len(payload) < 1 {
		return ApplyAction{}, &InvalidLengthError{Type: TypeApplyAction, Length: len(payload), Reason: "Apply Action requires at least 1 byte"}
	}
	return ApplyAction{Flags: ApplyActionFlags(payload[0])}, nil
}

// UPFunctionFeaturesFlags is the bitmask of optional UPF capabilities
// advertised during Association Setup. Only the subset this module
// exercises is named; unnamed bits still round-trip via the raw Flags
// field.
type UPFunctionFeaturesFlags uint16

const (
	UPFeatureBUCP   UPFunctionFeaturesFlags = 1 << 0 // buffering on CP function
	UPFeatureDDND   UPFunctionFeaturesFlags = 1 << 1 // downlink data notification delay
	UPFeatureDLBD   UPFunctionFeaturesFlags = 1 << 2 // DL buffering duration
	UPFeatureTRST   UPFunctionFeaturesFlags = 1 << 3 // traffic steering
	UPFeatureFTUP   UPFunctionFeaturesFlags = 1 << 4 // F-TEID allocation/release in UPF
	UPFeaturePFDM   UPFunctionFeaturesFlags = 1 << 5 // PFD management
	UPFeatureHEEU   UPFunctionFeaturesFlags = 1 << 6 // header enrichment
	UPFeatureTREU   UPFunctionFeaturesFlags = 1 << 7 // traffic redirection
	UPFeatureEMPU   UPFunctionFeaturesFlags = 1 << 8 // sending of end marker packets
	UPFeaturePDIU   UPFunctionFeaturesFlags = 1 << 9
	UPFeatureUDBC   UPFunctionFeaturesFlags = 1 << 10
	UPFeatureQUOAC  UPFunctionFeaturesFlags = 1 << 11
	UPFeatureTRACE  UPFunctionFeaturesFlags = 1 << 12
	UPFeatureFRRT   UPFunctionFeaturesFlags = 1 << 13
	UPFeaturePFDE   UPFunctionFeaturesFlags = 1 << 14
	UPFeatureMPTCP  UPFunctionFeaturesFlags = 1 << 15
)

func (f UPFunctionFeaturesFlags) Has(mask UPFunctionFeaturesFlags) bool { return f&mask == mask }

type UPFunctionFeatures struct {
	Flags UPFunctionFeaturesFlags
}

func (u UPFunctionFeatures) Marshal() Ie {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(u.Flags))
	return New(TypeUPFunctionFeatures, b)
}

func UnmarshalUPFunctionFeatures(payload []byte) (UPFunctionFeatures, error) {
	if len(payload) < 2 {
		return UPFunctionFeatures{}, &InvalidLengthError{Type: TypeUPFunctionFeatures, Length: len(payload), Reason: "UP Function Features requires at least 2 bytes"}
	}
	return UPFunctionFeatures{Flags: UPFunctionFeaturesFlags(binary.BigEndian.Uint16(payload[0:2]))}, nil
}

// CPFunctionFeaturesFlags is the bitmask of optional CP capabilities
// advertised during Association Setup, the CP-side counterpart of
// UPFunctionFeaturesFlags.
type CPFunctionFeaturesFlags uint8

const (
	CPFeatureLOAD CPFunctionFeaturesFlags = 1 << 0
	CPFeatureOVRL CPFunctionFeaturesFlags = 1 << 1
)

func (f CPFunctionFeaturesFlags) Has(mask CPFunctionFeaturesFlags) bool { return f&mask == mask }

type CPFunctionFeatures struct {
	Flags CPFunctionFeaturesFlags
}

func (c CPFunctionFeatures) Marshal() Ie {
	return New(TypeCPFunctionFeatures, []byte{byte(c.Flags)})
}

func UnmarshalCPFunctionFeatures(payload []byte) (CPFunctionFeatures, error) {
	if len(payload) < 1 {
		return CPFunctionFeatures{}, &InvalidLengthError{Type: TypeCPFunctionFeatures, Length: len(payload), Reason: "CP Function Features requires at least 1 byte"}
	}
	return CPFunctionFeatures{Flags: CPFunctionFeaturesFlags(payload[0])}, nil
}
