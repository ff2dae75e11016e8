// Package status defines the closed set of failure kinds shared by every
// layer of the cryptographic core, from field arithmetic up to the IBE and
// CP-ABE protocol entry points.
//
// Fallible operations in this module return plain Go errors built with
// New, Wrap or Wrapf around one of the Kind values below, so callers can
// recover the kind with errors.Is while still getting a wrapped message for
// diagnostics. Only Wrapf's cause (built with github.com/pkg/errors) carries
// a stack trace; New and Wrap add none. Random-number failures inside
// package access are returned as the underlying error, without a Kind.
package status

import "github.com/pkg/errors"

// Kind names one of the failure modes a cryptographic operation can report.
// Kind values are comparable and are the thing callers should branch on;
// the wrapping error's message is for logs, not control flow.
type Kind int

const (
	// OK is never returned as an error; it exists so a zero Kind is not
	// mistaken for a real failure when Kind values are stored or logged.
	OK Kind = iota
	SolinasGenFailed
	PointGenFailed
	PrimalityTestFailed
	IllegalPublicParameters
	IllegalPrivateKey
	IllegalCiphertext
	MessageNull
	MessageLengthZero
	IdentityNull
	IdentityLengthZero
	DecryptionFailed
	PairingDegenerate
	HashToPointFailed
	InverseNonInvertible
)

// Error lets a bare Kind be used as the target of errors.Is(err, someKind).
func (k Kind) Error() string {
	switch k {
	case OK:
		return "ok"
	case SolinasGenFailed:
		return "solinas prime generation failed"
	case PointGenFailed:
		return "affine point generation failed"
	case PrimalityTestFailed:
		return "primality test failed"
	case IllegalPublicParameters:
		return "illegal public parameters"
	case IllegalPrivateKey:
		return "illegal private key"
	case IllegalCiphertext:
		return "illegal ciphertext"
	case MessageNull:
		return "message is nil"
	case MessageLengthZero:
		return "message has zero length"
	case IdentityNull:
		return "identity is nil"
	case IdentityLengthZero:
		return "identity has zero length"
	case DecryptionFailed:
		return "decryption failed"
	case PairingDegenerate:
		return "pairing is degenerate"
	case HashToPointFailed:
		return "hash to point failed"
	case InverseNonInvertible:
		return "element is not invertible"
	default:
		return "unknown status"
	}
}

// kindError pairs a Kind with the wrapped cause so errors.Is(err, SomeKind)
// keeps working after the error has been wrapped one or more times with
// errors.Wrap.
type kindError struct {
	kind  Kind
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() error { return e.cause }

// Is lets errors.Is(err, SomeKind) work even though Kind is an int, not an
// error: status.New(status.DecryptionFailed) implements error, and its
// Is method treats Kind targets specially.
func (e *kindError) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.kind == k
	}
	return false
}

// New builds an error carrying kind with no further detail.
func New(kind Kind) error {
	return &kindError{kind: kind}
}

// Wrap builds an error carrying kind, annotated with cause's message and
// preserving cause in the unwrap chain.
func Wrap(kind Kind, cause error) error {
	if cause == nil {
		return New(kind)
	}
	return &kindError{kind: kind, cause: cause}
}

// Wrapf is Wrap with a formatted cause message.
func Wrapf(kind Kind, format string, args ...interface{}) error {
	return &kindError{kind: kind, cause: errors.Errorf(format, args...)}
}

// Of reports the Kind carried by err, if any. It is the inverse of New/Wrap
// and lets callers switch on a Kind without reaching for errors.Is for every
// value in the enum.
func Of(err error) (Kind, bool) {
	ke, ok := err.(*kindError)
	if !ok {
		return OK, false
	}
	return ke.kind, true
}
