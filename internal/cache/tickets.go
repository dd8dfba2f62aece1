package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/redis/go-redis/v9"
)

const allTicketsKey = "tickets:all"

// TicketCache keeps the full ticket list hot between the clients' 5-second
// polls. Entries are stored in wire form. All methods are no-ops when the
// Redis client is absent.
type TicketCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTicketCache(client *redis.Client, ttl time.Duration) *TicketCache {
	return &TicketCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *TicketCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *TicketCache) GetAll(ctx context.Context) ([]ticket.TicketDTO, bool) {
	if !c.Enabled() {
		return nil, false
	}
	raw, err := c.client.Get(ctx, allTicketsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tickets []ticket.TicketDTO
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, false
	}
	return tickets, true
}

func (c *TicketCache) SetAll(ctx context.Context, tickets []ticket.TicketDTO) {
	if !c.Enabled() {
		return
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, allTicketsKey, raw, c.ttl).Err()
}

func (c *TicketCache) Invalidate(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	_ = c.client.Del(ctx, allTicketsKey).Err()
}
