package ie

import "fmt"

// InterfaceValue enumerates the access-side/core-side/SGi-LAN/CP
// function points an IE can reference (Source Interface, Destination
// Interface).
type InterfaceValue uint8

const (
	InterfaceAccess       InterfaceValue = 0
	InterfaceCore         InterfaceValue = 1
	InterfaceSGiLAN       InterfaceValue = 2
	InterfaceCPFunction   InterfaceValue = 3
	Interface5GVNInternal InterfaceValue = 4
)

var interfaceNames = map[InterfaceValue]string{
	InterfaceAccess:       "Access",
	InterfaceCore:         "Core",
	InterfaceSGiLAN:       "SGi-LAN",
	InterfaceCPFunction:   "CP-Function",
	Interface5GVNInternal: "5G-VN-Internal",
}

func (i InterfaceValue) String() string {
	if name, ok := interfaceNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Interface(%d)", uint8(i))
}

// SourceInterface identifies the interface a PDR's PDI matches traffic
// arriving on.
type SourceInterface struct{ Value InterfaceValue }

func (s SourceInterface) Marshal() Ie { return New(TypeSourceInterface, []byte{byte(s.Value)}) }
func UnmarshalSourceInterface(payload []byte) (SourceInterface, error) {
	if len(payload) != 1 {
		return SourceInterface{}, &InvalidLengthError{Type: TypeSourceInterface, Length: len(payload), Reason: "Source Interface must be exactly 1 byte"}
	}
	return SourceInterface{Value: InterfaceValue(payload[0] & 0x0F)}, nil
}

// DestinationInterface identifies the interface a FAR forwards matched
// traffic towards.
type DestinationInterface struct{ Value InterfaceValue }

func (d DestinationInterface) Marshal() Ie {
	return New(TypeDestinationInterface, []byte{byte(d.Value)})
}
func UnmarshalDestinationInterface(payload []byte) (DestinationInterface, error) {
	if len(payload) != 1 {
		return DestinationInterface{}, &InvalidLengthError{Type: TypeDestinationInterface, Length: len(payload), Reason: "Destination Interface must be exactly 1 byte"}
	}
	return DestinationInterface{Value: InterfaceValue(payload[0] & 0x0F)}, nil
}
