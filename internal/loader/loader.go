package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spacesedan/commentpulse/internal/models"
)

// Result is what startup hands to the server. Err is nil when Comments holds
// real data; otherwise Comments holds the placeholder built from Err.
type Result struct {
	Source   string
	Comments models.CommentSet
	Err      error
}

func (r Result) Degraded() bool {
	return r.Err != nil
}

// Load never fails: any error from src is logged and replaced with the
// placeholder sequence so the service can still start and answer requests.
func Load(ctx context.Context, src Source) Result {
	comments, err := src.Comments(ctx)
	if err != nil {
		slog.Warn("[Loader] Failed to load comments, serving placeholder data",
			slog.String("source", src.Name()),
			slog.String("error", err.Error()))

		return Result{
			Source:   src.Name(),
			Comments: Placeholder(err),
			Err:      err,
		}
	}

	slog.Info("[Loader] Loaded comments",
		slog.String("source", src.Name()),
		slog.Int("count", len(comments)))

	return Result{
		Source:   src.Name(),
		Comments: models.CommentSet(comments),
	}
}

// Placeholder maps a load error to the diagnostic lines served in place of
// real comments.
func Placeholder(err error) models.CommentSet {
	var missingSource *MissingSourceError
	if errors.As(err, &missingSource) {
		return models.CommentSet{
			fmt.Sprintf("Error: Could not find %s.", missingSource.Name),
			"Please make sure the file is in the same folder as the service.",
		}
	}

	var missingColumn *MissingColumnError
	if errors.As(err, &missingColumn) {
		return models.CommentSet{
			fmt.Sprintf("Error: Found '%s', but could not find a column named '%s'.",
				missingColumn.Name, missingColumn.Column),
			"Please check your CSV file's column headers.",
		}
	}

	return models.CommentSet{
		fmt.Sprintf("An unexpected error occurred: %v", err),
	}
}
