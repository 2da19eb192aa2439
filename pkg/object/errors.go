package object

import "errors"

// Sentinel errors for the object store and codec. Callers match with
// errors.Is; wrapped messages carry the offending id or detail.
var (
	// ErrInvalidObjectID reports a malformed or unresolvable object id:
	// too short, no object on disk, or no entry matching an abbreviated
	// prefix.
	ErrInvalidObjectID = errors.New("invalid object id")

	// ErrAmbiguousObjectID reports an abbreviated id matching more than
	// one stored object. Ambiguity is always an error, never resolved to
	// an arbitrary match.
	ErrAmbiguousObjectID = errors.New("ambiguous object id")

	// ErrDecode reports a corrupt compressed stream or a malformed
	// object envelope.
	ErrDecode = errors.New("corrupt object")

	// ErrInvalidCommitFormat reports a structural violation of the
	// commit body layout.
	ErrInvalidCommitFormat = errors.New("invalid commit format")
)
