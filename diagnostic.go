package dbc

import "fmt"

// Status is a compound outcome code for a single library operation, encoded
// as a signed 32-bit bitfield per spec: the sign bit flags an error, bit 15
// (the high bit of the low 16-bit half) flags a warning independently of the
// sign bit, and the remaining low bits identify the specific Kind. A Status
// is ">= 0" exactly when the operation succeeded (Ok or a Warn.* kind).
type Status int32

const (
	statusErrorFlag Status = -1 << 31
	statusWarnFlag  Status = 1 << 15
	statusKindMask  Status = 0x7fff &^ statusWarnFlag
)

// Kind enumerates the specific outcomes a Status can carry.
type Kind int32

const (
	KindOk Kind = iota
	KindWarnDanglingReference
	KindWarnUnknownAttribute
	KindWarnBitOverflow
	KindWarnDuplicateName
	KindErrIOFailure
	KindErrParseError
	KindErrInvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case KindOk:
		return "Ok"
	case KindWarnDanglingReference:
		return "Warn.DanglingReference"
	case KindWarnUnknownAttribute:
		return "Warn.UnknownAttribute"
	case KindWarnBitOverflow:
		return "Warn.BitOverflow"
	case KindWarnDuplicateName:
		return "Warn.DuplicateName"
	case KindErrIOFailure:
		return "Err.IOFailure"
	case KindErrParseError:
		return "Err.ParseError"
	case KindErrInvalidEncoding:
		return "Err.InvalidEncoding"
	default:
		return "Unknown"
	}
}

func (k Kind) isWarning() bool {
	switch k {
	case KindWarnDanglingReference, KindWarnUnknownAttribute, KindWarnBitOverflow, KindWarnDuplicateName:
		return true
	default:
		return false
	}
}

func (k Kind) isError() bool {
	switch k {
	case KindErrIOFailure, KindErrParseError, KindErrInvalidEncoding:
		return true
	default:
		return false
	}
}

// StatusOK is the zero-value, all-clear Status.
var StatusOK = Status(0)

// NewStatus builds a Status for the given Kind.
func NewStatus(k Kind) Status {
	switch {
	case k == KindOk:
		return StatusOK
	case k.isWarning():
		return statusWarnFlag | Status(k)
	case k.isError():
		return statusErrorFlag | Status(k)
	default:
		return statusErrorFlag | Status(k)
	}
}

// IsOK reports whether the status is the all-clear Ok status.
func (s Status) IsOK() bool { return s == StatusOK }

// IsWarning reports whether the warning flag is set, independent of error.
func (s Status) IsWarning() bool { return s&statusWarnFlag != 0 }

// IsError reports whether the sign bit (error flag) is set.
func (s Status) IsError() bool { return s < 0 }

// Succeeded reports whether the operation completed without an error
// (Ok or any Warn.* kind); this mirrors spec.md's ">= 0 is success" rule.
func (s Status) Succeeded() bool { return s >= 0 }

// Kind extracts the specific outcome kind carried by the status.
func (s Status) Kind() Kind {
	return Kind(s &^ (statusErrorFlag | statusWarnFlag))
}

func (s Status) String() string { return s.Kind().String() }

// Diagnostic is a single structured event emitted by a parse or serialize
// operation: a Status plus the context needed to locate and explain it.
type Diagnostic struct {
	Status  Status
	Line    int    // 1-based source line, 0 if not applicable
	Object  string // entity name/id the diagnostic concerns, if any
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", d.Status, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Status, d.Message)
}

// Diagnostics is an ordered batch of Diagnostic events, as returned by Parse
// and Emit.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic in the batch is an Err.* kind.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Status.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic in the batch is a Warn.* kind.
func (ds Diagnostics) HasWarnings() bool {
	for _, d := range ds {
		if d.Status.IsWarning() {
			return true
		}
	}
	return false
}

// DiagnosticSink receives diagnostics in emission order. Implementations
// must be reentrant if shared across Networks (see spec.md §5).
type DiagnosticSink interface {
	Handle(Diagnostic)
}

// DiagnosticSinkFunc adapts a function to a DiagnosticSink, mirroring the
// teacher's small single-method-interface style in interface.go.
type DiagnosticSinkFunc func(Diagnostic)

// Handle implements DiagnosticSink.
func (f DiagnosticSinkFunc) Handle(d Diagnostic) { f(d) }

// NopDiagnosticSink discards every diagnostic handed to it.
var NopDiagnosticSink DiagnosticSink = DiagnosticSinkFunc(func(Diagnostic) {})

// ProgressSink receives coarse-grained (bytesConsumed, bytesTotal) progress
// checkpoints during a Parse. It is an observable side effect only.
type ProgressSink interface {
	Progress(bytesConsumed, bytesTotal int64)
}

// ProgressSinkFunc adapts a function to a ProgressSink.
type ProgressSinkFunc func(bytesConsumed, bytesTotal int64)

// Progress implements ProgressSink.
func (f ProgressSinkFunc) Progress(consumed, total int64) { f(consumed, total) }

// NopProgressSink discards every progress checkpoint handed to it.
var NopProgressSink ProgressSink = ProgressSinkFunc(func(int64, int64) {})
