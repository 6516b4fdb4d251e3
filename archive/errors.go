package archive

import (
	"fmt"
	"strings"
)

// NotFoundError reports that a required file, directory, or conversation
// match does not exist in the export. Hint, when set, carries actionable
// guidance for the user.
type NotFoundError struct {
	Path string
	Hint string
}

func (e *NotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("not found: %s\n%s", e.Path, e.Hint)
	}
	return "not found: " + e.Path
}

// MalformedDataError reports that a file exists but does not parse as the
// expected JSON structure. It is never recovered locally; callers see it
// unmodified.
type MalformedDataError struct {
	Path string
	Err  error
}

func (e *MalformedDataError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed export data: %v", e.Err)
	}
	return fmt.Sprintf("malformed export data in %s: %v", e.Path, e.Err)
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// AmbiguousMatchError reports that a conversation-name fragment prefix-matched
// more than one inbox folder.
type AmbiguousMatchError struct {
	Fragment string
	Matches  []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("conversation fragment %q matches multiple folders: %s",
		e.Fragment, strings.Join(e.Matches, ", "))
}
