package books

import (
	"context"

	"github.com/gbazo/bibproc/internal/biblio"
	"github.com/gbazo/bibproc/internal/cache"
	"github.com/gbazo/bibproc/internal/classify"
)

// Service answers metadata lookups through the cache, going to the network
// only on a miss. Failed lookups are cached as negative entries so they are
// never retried, across process restarts included.
type Service struct {
	client *Client
	cache  *cache.Cache
}

// NewService creates a lookup service over client and cache.
func NewService(client *Client, c *cache.Cache) *Service {
	return &Service{client: client, cache: c}
}

// Lookup returns the metadata record for a (title, author) pair, or nil when
// the lookup failed. The error is non-nil only for context cancellation;
// provider failures are recorded as negative cache entries and reported as
// a nil record.
//
// Callers must not invoke Lookup with an empty title; rows without a title
// are skipped upstream.
func (s *Service) Lookup(ctx context.Context, title, author string) (*biblio.Metadata, error) {
	if entry, ok := s.cache.Get(title, author); ok {
		return entry.Meta, nil
	}

	meta, err := s.client.Search(ctx, title, author)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation is not a provider miss; leave the cache alone.
			return nil, ctx.Err()
		}
		s.cache.Put(title, author, nil)
		return nil, nil
	}

	meta.CitationType = classify.Classify(*meta)
	s.cache.Put(title, author, meta)
	return meta, nil
}
