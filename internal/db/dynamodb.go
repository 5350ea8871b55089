package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrTableNotFound    = errors.New("table not found")
	ErrAttributeMissing = errors.New("attribute missing from every item")
)

// ScanComments reads attribute from every item in table. Items without the
// attribute contribute an empty string so the item count is preserved.
func ScanComments(ctx context.Context, client dynamodb.ScanAPIClient, table, attribute string) ([]string, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(table),
		ProjectionExpression:     aws.String("#c"),
		ExpressionAttributeNames: map[string]string{"#c": attribute},
	}

	paginator := dynamodb.NewScanPaginator(client, input)

	comments := make([]string, 0)
	found := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("[DynamoDB] %s: %w", table, ErrTableNotFound)
			}
			return nil, fmt.Errorf("[DynamoDB] Scan for comments failed: %w", err)
		}

		for _, item := range out.Items {
			av, ok := item[attribute]
			if !ok {
				comments = append(comments, "")
				continue
			}

			var text string
			if err := attributevalue.Unmarshal(av, &text); err != nil {
				slog.Warn("[DynamoDB] Non-string comment attribute, using empty text",
					slog.String("table", table),
					slog.String("error", err.Error()))
			}
			comments = append(comments, text)
			found++
		}
	}

	if len(comments) > 0 && found == 0 {
		return nil, fmt.Errorf("[DynamoDB] %s.%s: %w", table, attribute, ErrAttributeMissing)
	}

	slog.Info("[DynamoDB] Successfully retrieved comments",
		slog.String("table", table),
		slog.Int("count", len(comments)))
	return comments, nil
}
