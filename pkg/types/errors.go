package types

import "fmt"

// MalformedInputError is fatal: the source file is not well formed XML or
// has no folder/placemark structure to convert.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: no folders or placemarks found", e.Path)
	}
	return fmt.Sprintf("%s: malformed KML: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// InvalidConfigurationError is fatal and raised before any output is
// written.
type InvalidConfigurationError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// DuplicateOutputNameError is raised in layer-split mode when two folders
// sanitise to the same output file name. Files written before the
// collision remain on disk.
type DuplicateOutputNameError struct {
	Name   string
	Folder string
}

func (e *DuplicateOutputNameError) Error() string {
	return fmt.Sprintf("layer %q: output name %q already written by another layer", e.Folder, e.Name)
}
