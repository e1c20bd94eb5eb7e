package artifact

// InputSurface is the editable text control holding the draft message.
type InputSurface interface {
	Text() string
	SetText(text string)
}

// OutputSurface is a read-only region holding a result produced elsewhere.
type OutputSurface interface {
	Text() string
}

// Form restores all of its fields to their initial values at once.
type Form interface {
	Reset()
}

// Surfaces is the set of surfaces present for a single user action. The
// caller resolves it at the time of the action; a nil field means the
// surface is not rendered and operations targeting it do nothing.
type Surfaces struct {
	Input     InputSurface
	Output    OutputSurface
	Composer  Form
	Validator Form
}

// StaticText is an OutputSurface over a fixed string.
type StaticText string

func (t StaticText) Text() string { return string(t) }
