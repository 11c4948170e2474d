package vastcheck

// Kind classifies a validation finding.
type Kind string

const (
	// KindMissing marks a required parameter that is absent from the request.
	KindMissing Kind = "missing"
	// KindInvalid marks a present parameter whose value fails its type rule,
	// or an unknown implementation type.
	KindInvalid Kind = "invalid"
	// KindRecommended marks an absent recommended parameter. Advisory only.
	KindRecommended Kind = "recommended"
)

// Blocking reports whether findings of this kind make a request invalid.
func (k Kind) Blocking() bool {
	return k == KindMissing || k == KindInvalid
}

// Issue is a single validation finding attached to one parameter.
type Issue struct {
	Parameter string `json:"parameter"`
	Kind      Kind   `json:"type"`
	Message   string `json:"message"`
}
