package report

import (
	"fmt"
	"os"
)

// TextSpan represents a range or "span" of source text. It is used to
// specify erroneous or otherwise significant source text in a compiled
// program. The starting position is the position of the first character
// in the span; the ending position is the position just past the last
// character, so a span's width on one line is EndCol - StartCol. The line
// and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// -----------------------------------------------------------------------------

// CompileError is a fatal compilation error that occurs in a context in
// which the source file is already known by the caller and thus doesn't
// need to be passed along with the error.
type CompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.  May be nil.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Raise panics with a new CompileError. The tokenizer, parser, lowerer, and
// SSA pass call this rather than threading an error return through every
// visitor method; CatchErrors, deferred once at the top of the pipeline,
// converts the panic back into a diagnostic.
func Raise(span *TextSpan, msg string, args ...interface{}) {
	panic(&CompileError{Message: fmt.Sprintf(msg, args...), Span: span})
}

// -----------------------------------------------------------------------------

// ICEError is an internal compiler error anchored to the span of the AST
// node whose invariant failed. Unlike a bare ReportICE call, it carries
// enough context for CatchErrors to show the offending source text, which
// matters for the "unhandled node kind" class of ICE: the node that
// triggered it is sitting right there in the source.
type ICEError struct {
	Message string
	Span    *TextSpan
}

func (ie *ICEError) Error() string {
	return ie.Message
}

// RaiseICE panics with a new ICEError. Call this instead of ReportICE
// whenever the invariant violation is discovered while visiting a
// specific AST node, so the diagnostic can point at it.
func RaiseICE(span *TextSpan, msg string, args ...interface{}) {
	panic(&ICEError{Message: fmt.Sprintf(msg, args...), Span: span})
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error. These are conditions this
// design states can never happen on well-formed input: they are not
// expected to ever fire. Always displayed regardless of log level, and
// exits with a code distinct from an expected fatal error.
func ReportICE(message string, args ...interface{}) {
	displayICE(fmt.Sprintf(message, args...))
	os.Exit(2)
}

// ReportFatal reports a fatal error with no associated source span: bad
// arguments, a missing or unreadable source file, an unparseable profile
// file. Exits with code 1.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// ReportCompileError reports a fatal compilation error anchored to a source
// file. absPath is the absolute path used to re-read the source text for
// the caret display; reprPath is the path printed to the user. The span
// may be nil, in which case no position information is printed. Exits with
// code 1.
func ReportCompileError(absPath, reprPath string, span *TextSpan, message string) {
	if rep.logLevel > LogLevelSilent {
		displayCompileMessage("error", absPath, reprPath, span, message)
	}

	os.Exit(1)
}

// ReportICEAt reports an internal compiler error anchored to a source span,
// for the case where the invariant violation was discovered while visiting
// a specific AST node (see RaiseICE). Always displayed regardless of log
// level, and exits with the same code as ReportICE.
func ReportICEAt(absPath, reprPath string, span *TextSpan, message string) {
	displayICEAt(absPath, reprPath, span, message)
	os.Exit(2)
}

// -----------------------------------------------------------------------------

// CatchErrors catches any error thrown by a `panic` during compilation of
// the file at absPath/reprPath and converts it into a diagnostic. An
// *ICEError becomes a source-anchored internal compiler error, a
// *CompileError becomes a source-anchored compile error, and any other
// panic is reported as an internal compiler error with no source context.
// NB: This function must ALWAYS be deferred.
func CatchErrors(absPath, reprPath string) {
	if x := recover(); x != nil {
		if ierr, ok := x.(*ICEError); ok {
			ReportICEAt(absPath, reprPath, ierr.Span, ierr.Message)
		} else if cerr, ok := x.(*CompileError); ok {
			ReportCompileError(absPath, reprPath, cerr.Span, cerr.Message)
		} else if err, ok := x.(error); ok {
			ReportICE("%s", err.Error())
		} else {
			ReportICE("%v", x)
		}
	}
}
