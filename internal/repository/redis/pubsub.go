package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// ActionsPubSub broadcasts acknowledged admin actions.
type ActionsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewActionsPubSub(rdb *redis.Client) *ActionsPubSub {
	return &ActionsPubSub{
		rdb:     rdb,
		channel: ChannelAdminActions(),
	}
}

type actionMsg struct {
	Ack    domain.Ack `json:"ack"`
	TsUnix int64      `json:"ts_unix"`
}

func (p *ActionsPubSub) PublishAck(ctx context.Context, ack domain.Ack) error {
	b, err := json.Marshal(actionMsg{Ack: ack, TsUnix: time.Now().Unix()})
	if err != nil {
		return err
	}

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Subscribe calls handler for every action published on the channel until
// ctx is done. Malformed payloads are skipped.
func (p *ActionsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, ack domain.Ack, at time.Time)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}

			var msg actionMsg
			if err := json.Unmarshal([]byte(m.Payload), &msg); err == nil && msg.Ack.Action != "" {
				handler(ctx, msg.Ack, time.Unix(msg.TsUnix, 0))
			}
		}
	}
}
