package loader

import (
	"context"
	"fmt"
)

// Source yields the raw comment texts for the single dataset this process serves.
type Source interface {
	Name() string
	Comments(ctx context.Context) ([]string, error)
}

// MissingSourceError means the dataset itself does not exist.
type MissingSourceError struct {
	Name string
	Err  error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("comment source %q not found: %v", e.Name, e.Err)
}

func (e *MissingSourceError) Unwrap() error {
	return e.Err
}

// MissingColumnError means the dataset exists but has no comment column.
type MissingColumnError struct {
	Name   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("comment source %q has no column %q", e.Name, e.Column)
}
