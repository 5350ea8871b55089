package loader

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spacesedan/commentpulse/internal/db"
)

type DynamoSource struct {
	Client    dynamodb.ScanAPIClient
	Table     string
	Attribute string
}

func NewDynamoSource(client dynamodb.ScanAPIClient, table, attribute string) *DynamoSource {
	return &DynamoSource{Client: client, Table: table, Attribute: attribute}
}

func (s *DynamoSource) Name() string {
	return s.Table
}

func (s *DynamoSource) Comments(ctx context.Context) ([]string, error) {
	comments, err := db.ScanComments(ctx, s.Client, s.Table, s.Attribute)
	switch {
	case errors.Is(err, db.ErrTableNotFound):
		return nil, &MissingSourceError{Name: s.Name(), Err: err}
	case errors.Is(err, db.ErrAttributeMissing):
		return nil, &MissingColumnError{Name: s.Name(), Column: s.Attribute}
	case err != nil:
		return nil, err
	}
	return comments, nil
}
