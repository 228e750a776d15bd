package widget

// StateRegister tracks the single component holding an exclusive state
// (hover or focus) on a screen.
//
// Claiming the state for a new component evicts the previous holder, whose
// own state is cleared through a forced transition. Releasing only succeeds
// for the current holder.
//
// Usage:
//
//	hover := NewStateRegister(StateHovered)
//	hover.Claim(button, true)  // button now holds hover
//	hover.Claim(label, true)   // button.SetHovered(false) is forced, label holds hover
//	hover.Claim(label, false)  // nobody holds hover
type StateRegister struct {
	kind   StateKind
	holder Element
}

// NewStateRegister creates an empty register for the given state.
func NewStateRegister(kind StateKind) *StateRegister {
	return &StateRegister{kind: kind}
}

// Holder returns the component currently holding the state, or nil.
func (r *StateRegister) Holder() Element {
	return r.holder
}

// Holds reports whether e is the current holder.
func (r *StateRegister) Holds(e Element) bool {
	return r.holder != nil && e != nil && r.holder.Node() == e.Node()
}

// Claim records that e gains (state=true) or loses (state=false) the state.
// It returns true if the register changed.
func (r *StateRegister) Claim(e Element, state bool) bool {
	if !state {
		if !r.Holds(e) {
			return false
		}
		r.holder = nil
		return true
	}

	if r.Holds(e) {
		return false
	}

	prev := r.holder
	// holder is updated first so the evicted component's release is a no-op here
	r.holder = e
	if prev != nil {
		if verbose() {
			logger.Debug().
				Str("state", r.kind.String()).
				Str("evicted", describe(prev)).
				Str("holder", describe(e)).
				Msg("state holder evicted")
		}
		prev.Node().forceState(r.kind, false)
	}
	return true
}

// Clear releases the state from whoever holds it.
func (r *StateRegister) Clear() {
	if r.holder == nil {
		return
	}
	prev := r.holder
	r.holder = nil
	prev.Node().forceState(r.kind, false)
}
