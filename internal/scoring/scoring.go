// Package scoring holds the two business computations behind the method
// API: the identity score and the per-client interests lookup. Both talk to
// the store collaborator; neither knows about HTTP or schemas.
package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Store is the collaborator contract the computations need. The scoring
// side uses it as a cache; the interests side as the system of record.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	CacheGet(ctx context.Context, key string) []byte
	CacheSet(ctx context.Context, key string, value []byte, ttl time.Duration)
}

const (
	scoreCacheTTL      = time.Hour
	scoreKeyPrefix     = "uid:"
	interestsKeyPrefix = "i:"
)

// Params is the identity signal the score is computed from. Zero values
// mean the field was not supplied.
type Params struct {
	Phone     string
	Email     string
	FirstName string
	LastName  string
	Birthday  *time.Time
	Gender    *int
}

// Score computes the identity score, consulting the store as a cache.
// Cache failures degrade to recomputation; Score itself cannot fail.
func Score(ctx context.Context, store Store, p Params) float64 {
	key := cacheKey(p)
	if cached := store.CacheGet(ctx, key); cached != nil {
		if score, err := strconv.ParseFloat(string(cached), 64); err == nil {
			return score
		}
	}

	score := 0.0
	if p.Phone != "" {
		score += 1.5
	}
	if p.Email != "" {
		score += 1.5
	}
	if p.Birthday != nil && p.Gender != nil {
		score += 1.5
	}
	if p.FirstName != "" && p.LastName != "" {
		score += 0.5
	}

	store.CacheSet(ctx, key, []byte(strconv.FormatFloat(score, 'g', -1, 64)), scoreCacheTTL)
	return score
}

func cacheKey(p Params) string {
	var birthday string
	if p.Birthday != nil {
		birthday = p.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(p.FirstName + p.LastName + p.Phone + birthday))
	return scoreKeyPrefix + hex.EncodeToString(sum[:])
}

// Interests returns the interest list for a client. The store is the source
// of truth here, so its failure propagates; a missing key is an empty list.
func Interests(ctx context.Context, store Store, clientID int64) ([]string, error) {
	value, err := store.Get(ctx, interestsKeyPrefix+strconv.FormatInt(clientID, 10))
	if err != nil {
		return nil, fmt.Errorf("interests lookup for client %d: %w", clientID, err)
	}
	if len(value) == 0 {
		return []string{}, nil
	}

	var interests []string
	if err := json.Unmarshal(value, &interests); err != nil {
		return nil, fmt.Errorf("decode interests for client %d: %w", clientID, err)
	}
	return interests, nil
}
