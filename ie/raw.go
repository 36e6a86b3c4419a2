package ie

// Raw wraps an Ie whose type this module does not decode into a typed
// struct. It exists so a grouped-IE or message decoder can preserve and
// re-marshal an unrecognized child unchanged (forward compatibility,
// §4.3) instead of silently dropping it.
type Raw struct {
	Ie Ie
}

func (r Raw) Marshal() Ie { return r.Ie }

// NewRaw wraps a decoded Ie for passthrough.
func NewRaw(i Ie) Raw { return Raw{Ie: i} }
