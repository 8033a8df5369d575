// Package cache provides a Redis read-through cache for the card catalogue.
// Card definitions are the hottest read on the recommendation path and change
// rarely, so they are cached with a short TTL and invalidated on writes.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/RyanNgWH/WhichCard-backend/internal/models"
	"github.com/RyanNgWH/WhichCard-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
)

// Compile-time check to ensure CardCache implements the interface
var _ repositories.CardRepository = (*CardCache)(nil)

const cardTTL = 5 * time.Minute

// CardCache wraps a CardRepository with a Redis read-through cache.
type CardCache struct {
	next   repositories.CardRepository
	client *redis.Client
}

// NewCardCache creates a CardCache in front of the given repository.
func NewCardCache(next repositories.CardRepository, client *redis.Client) *CardCache {
	return &CardCache{
		next:   next,
		client: client,
	}
}

func cardIDKey(id string) string {
	return "card:id:" + id
}

func cardTypeIssuerKey(cardType, issuer string) string {
	return fmt.Sprintf("card:type:%s:issuer:%s", strings.ToLower(cardType), strings.ToLower(issuer))
}

// FindByID returns the cached definition if present, otherwise reads through
// to the underlying repository. Cache failures other than a miss fall back to
// the repository as well; the cache is an optimization, never a dependency.
func (c *CardCache) FindByID(ctx context.Context, id string) (*models.Card, error) {
	if card, ok := c.get(ctx, cardIDKey(id)); ok {
		return card, nil
	}

	card, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.put(ctx, card)
	return card, nil
}

// FindByTypeAndIssuer returns the cached definition if present, otherwise
// reads through to the underlying repository.
func (c *CardCache) FindByTypeAndIssuer(ctx context.Context, cardType, issuer string) (*models.Card, error) {
	if card, ok := c.get(ctx, cardTypeIssuerKey(cardType, issuer)); ok {
		return card, nil
	}

	card, err := c.next.FindByTypeAndIssuer(ctx, cardType, issuer)
	if err != nil {
		return nil, err
	}
	c.put(ctx, card)
	return card, nil
}

// Create inserts the definition and primes the cache.
func (c *CardCache) Create(ctx context.Context, card *models.Card) error {
	if err := c.next.Create(ctx, card); err != nil {
		return err
	}
	c.put(ctx, card)
	return nil
}

// FindAll is not cached; catalogue listings are rare and unbounded.
func (c *CardCache) FindAll(ctx context.Context) ([]*models.Card, error) {
	return c.next.FindAll(ctx)
}

// Update writes through and refreshes the cached entries.
func (c *CardCache) Update(ctx context.Context, card *models.Card) error {
	if err := c.next.Update(ctx, card); err != nil {
		return err
	}
	c.put(ctx, card)
	return nil
}

// Delete removes the definition and drops its id entry. The (type, issuer)
// entry is left to expire with its TTL.
func (c *CardCache) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.client.Del(ctx, cardIDKey(id))
	return nil
}

func (c *CardCache) get(ctx context.Context, key string) (*models.Card, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil (a miss) and transport errors are treated alike.
		return nil, false
	}

	var card models.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, false
	}
	return &card, true
}

func (c *CardCache) put(ctx context.Context, card *models.Card) {
	data, err := json.Marshal(card)
	if err != nil {
		return
	}
	c.client.Set(ctx, cardIDKey(card.ID), data, cardTTL)
	c.client.Set(ctx, cardTypeIssuerKey(card.Type, card.Issuer), data, cardTTL)
}
