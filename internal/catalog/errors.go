package catalog

import "fmt"

const exitCodeFailure = 1

// NotFoundError means the catalog file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Could not find %s. Please ensure the data file exists.", e.Path)
}

func (e *NotFoundError) ExitCode() int { return exitCodeFailure }

// MalformedError means the catalog file exists but is not a JSON object.
type MalformedError struct {
	Path   string
	Msg    string
	Line   int
	Column int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("Failed to decode JSON in %s: %s (line %d)", e.Path, e.Msg, e.Line)
}

func (e *MalformedError) ExitCode() int { return exitCodeFailure }

// ItemNotFoundError means the catalog has no entry for Item.
type ItemNotFoundError struct {
	Item string
	Path string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item '%s' was not found in %s.", e.Item, e.Path)
}

func (e *ItemNotFoundError) ExitCode() int { return exitCodeFailure }
