package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/valkey-io/valkey-go"
)

type ValkeyConfig struct {
	Address  string
	Password string
	UseTLS   bool
}

// ValkeyClient stores compound scores keyed by comment hash.
type ValkeyClient struct {
	Client valkey.Client
}

func NewValkeyClient(ctx context.Context, cfg ValkeyConfig) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.UseTLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	vc := &ValkeyClient{Client: client}
	if err := vc.Ping(ctx); err != nil {
		client.Close()
		return nil, err
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", cfg.Address))
	return vc, nil
}

func (vc *ValkeyClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := vc.Client.Do(ctx, vc.Client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

func (vc *ValkeyClient) GetScore(ctx context.Context, key string) (float64, bool, error) {
	score, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build()).AsFloat64()
	if valkey.IsValkeyNil(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

func (vc *ValkeyClient) SetScore(ctx context.Context, key string, score float64, ttl time.Duration) error {
	cmd := vc.Client.B().Set().
		Key(key).
		Value(strconv.FormatFloat(score, 'f', -1, 64)).
		PxMilliseconds(expiryMillis(ttl)).
		Build()

	return vc.Client.Do(ctx, cmd).Error()
}

// expiryMillis never returns 0; the server rejects PX 0.
func expiryMillis(ttl time.Duration) int64 {
	if ms := ttl.Milliseconds(); ms > 0 {
		return ms
	}
	return 1
}
