package ie

// ApplicationID names an operator-defined application detection filter
// (an opaque string looked up against the UPF's local configuration).
type ApplicationID struct {
	Value string
}

func (a ApplicationID) Marshal() Ie { return New(TypeApplicationID, []byte(a.Value)) }
func UnmarshalApplicationID(payload []byte) (ApplicationID, error) {
	return ApplicationID{Value: string(payload)}, nil
}
