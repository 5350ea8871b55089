package loader

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spacesedan/commentpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name     string
	comments []string
	err      error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Comments(context.Context) ([]string, error) {
	return s.comments, s.err
}

func TestLoad_Success(t *testing.T) {
	res := Load(context.Background(), stubSource{name: "extracted.csv", comments: []string{"a", "b"}})

	require.NoError(t, res.Err)
	assert.False(t, res.Degraded())
	assert.Equal(t, "extracted.csv", res.Source)
	assert.Equal(t, models.CommentSet{"a", "b"}, res.Comments)
}

func TestLoad_MissingFileUsesTwoLinePlaceholder(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "extracted.csv"), "Comment")

	res := Load(context.Background(), src)

	assert.True(t, res.Degraded())
	assert.Equal(t, models.CommentSet{
		"Error: Could not find extracted.csv.",
		"Please make sure the file is in the same folder as the service.",
	}, res.Comments)
}

func TestLoad_MissingColumnUsesTwoLinePlaceholder(t *testing.T) {
	path := writeCSV(t, "Text\nhello\n")

	res := Load(context.Background(), NewCSVSource(path, "Comment"))

	assert.True(t, res.Degraded())
	assert.Equal(t, models.CommentSet{
		"Error: Found 'extracted.csv', but could not find a column named 'Comment'.",
		"Please check your CSV file's column headers.",
	}, res.Comments)
}

func TestLoad_OtherErrorUsesOneLinePlaceholder(t *testing.T) {
	res := Load(context.Background(), stubSource{name: "x", err: errors.New("disk on fire")})

	assert.True(t, res.Degraded())
	assert.Equal(t, models.CommentSet{"An unexpected error occurred: disk on fire"}, res.Comments)
}

func TestPlaceholder_UnwrapsWrappedErrors(t *testing.T) {
	err := errors.Join(errors.New("context"), &MissingColumnError{Name: "Comments", Column: "Comment"})

	lines := Placeholder(err)

	require.Len(t, lines, 2)
	assert.Equal(t, "Error: Found 'Comments', but could not find a column named 'Comment'.", lines[0])
}

func TestLoad_WideRowUsesOneLinePlaceholder(t *testing.T) {
	path := writeCSV(t, "Comment\ngood,extra\n")

	res := Load(context.Background(), NewCSVSource(path, "Comment"))

	assert.True(t, res.Degraded())
	assert.Equal(t, models.CommentSet{
		"An unexpected error occurred: error tokenizing data: expected 1 fields in line 2, saw 2",
	}, res.Comments)
}
