package highlight

import "errors"

// ErrFactory is wrapped by factory-time configuration errors: wrong
// parameter count, unknown face name, bad regex. These surface to the user
// at setup time; a reference miss or regex runtime error, by contrast, is
// silent at invocation (see SPEC_FULL.md §7). Option names and types are
// not checked at setup time: regex_option and line_option read their
// option on every pass and do nothing on a pass where it is missing or of
// another type.
var ErrFactory = errors.New("highlighter configuration error")

// ErrReferenceMiss exists only for documentation: ref resolution failures
// are silently ignored at invocation, never returned as an error, so
// nothing in this package returns it and no test refers to it.
var ErrReferenceMiss = errors.New("highlighter reference not found")
