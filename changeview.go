package vellum

// ChangeView is a model's verdict on what its view needs after an update.
// Values are ordered by severity: ChangeRebuild > ChangeModify > ChangeNone.
type ChangeView uint8

const (
	ChangeNone    ChangeView = iota // leave the view alone
	ChangeModify                    // patch the existing view in place
	ChangeRebuild                   // discard the view and build a new one
)

// String returns the verdict's name.
func (c ChangeView) String() string {
	switch c {
	case ChangeNone:
		return "none"
	case ChangeModify:
		return "modify"
	case ChangeRebuild:
		return "rebuild"
	default:
		return "unknown"
	}
}

// ChangeViewState accumulates the most severe verdict seen since it was
// last taken.
type ChangeViewState struct {
	v ChangeView
}

// Update folds v in. A less severe verdict never lowers the state.
func (s *ChangeViewState) Update(v ChangeView) {
	if s.v == ChangeRebuild {
		return
	}
	if v > s.v {
		s.v = v
	}
}

// Get returns the accumulated verdict without resetting it.
func (s *ChangeViewState) Get() ChangeView { return s.v }

// Take returns the accumulated verdict and resets the state to ChangeNone.
func (s *ChangeViewState) Take() ChangeView {
	v := s.v
	s.v = ChangeNone
	return v
}
