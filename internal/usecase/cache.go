package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error                      { return nil }
func (noopCache) InvalidatePrefix(context.Context, string) error            { return nil }

func cacheOrNoop(c Cache) Cache {
	if c == nil {
		return noopCache{}
	}
	return c
}

const (
	cacheKeyVocabulary  = "catalog:vocabulary"
	cacheKeyCourses     = "catalog:courses"
	cachePrefixAnalyses = "analysis:"
)

func AnalysisCachePrefix(candidateID uuid.UUID) string {
	return cachePrefixAnalyses + candidateID.String() + ":"
}

func AnalysisCacheKey(candidateID uuid.UUID, text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return AnalysisCachePrefix(candidateID) + hex.EncodeToString(sum[:])
}
