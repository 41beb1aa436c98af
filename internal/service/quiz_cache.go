package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"news-quiz/internal/cache"
	"news-quiz/internal/domain"
	"news-quiz/internal/logger"
	"news-quiz/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	quizCacheService    = "quiz"
	quizCacheObjectType = "questions"

	// sharedLoadTimeout bounds a load started on behalf of several readers.
	sharedLoadTimeout = 10 * time.Second
)

type cachedQuestion struct {
	ID            int64     `json:"id"`
	ArticleID     int64     `json:"article_id"`
	Question      string    `json:"question"`
	CorrectAnswer bool      `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizCache fronts question-set reads with a cache. Concurrent misses for the
// same article share one load. Cache failures are logged and never returned.
// A nil cache disables caching.
type QuizCache struct {
	cache domain.Cache
	ttl   time.Duration
	group singleflight.Group

	// generations counts invalidations per key. A load only stores its result
	// if no invalidation happened while it ran.
	mu          sync.Mutex
	generations map[string]uint64
}

func NewQuizCache(c domain.Cache, ttl time.Duration) *QuizCache {
	return &QuizCache{cache: c, ttl: ttl, generations: make(map[string]uint64)}
}

func (c *QuizCache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

func (c *QuizCache) bumpGeneration(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[key]++
}

func quizCacheKey(articleID int64) string {
	return cache.GenerateCacheKey(quizCacheService, quizCacheObjectType, strconv.FormatInt(articleID, 10))
}

// Questions returns the article's question set, calling load on a miss.
// Empty sets are not cached.
func (c *QuizCache) Questions(
	ctx context.Context,
	articleID int64,
	load func(ctx context.Context) ([]*domain.QuizQuestion, error),
) ([]*domain.QuizQuestion, error) {
	if c == nil || c.cache == nil {
		return load(ctx)
	}

	key := quizCacheKey(articleID)
	questions, ok := c.get(ctx, key)
	metrics.RecordCacheLookup(ok)
	if ok {
		return questions, nil
	}

	// The shared load outlives any single caller. Each caller still stops
	// waiting when its own ctx ends.
	ch := c.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()

		gen := c.generation(key)
		questions, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if len(questions) > 0 && c.generation(key) == gen {
			c.set(loadCtx, key, questions)
			// An invalidation between the check and the write may have
			// deleted the key before set stored it.
			if c.generation(key) != gen {
				c.delete(loadCtx, key)
			}
		}
		return questions, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*domain.QuizQuestion), nil
	}
}

// Invalidate drops the cached set of an article.
func (c *QuizCache) Invalidate(ctx context.Context, articleID int64) {
	if c == nil || c.cache == nil {
		return
	}
	key := quizCacheKey(articleID)
	c.bumpGeneration(key)
	c.group.Forget(key)
	c.delete(ctx, key)
}

func (c *QuizCache) delete(ctx context.Context, key string) {
	if err := c.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("Quiz cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *QuizCache) get(ctx context.Context, key string) ([]*domain.QuizQuestion, bool) {
	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Quiz cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var cached []cachedQuestion
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		logger.Get().Warn("Quiz cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	questions := make([]*domain.QuizQuestion, 0, len(cached))
	for _, q := range cached {
		questions = append(questions, &domain.QuizQuestion{
			ID:            q.ID,
			ArticleID:     q.ArticleID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			CreatedAt:     q.CreatedAt,
			UpdatedAt:     q.CreatedAt,
		})
	}
	logger.Get().Debug("Quiz cache hit", zap.String("key", key))
	return questions, true
}

func (c *QuizCache) set(ctx context.Context, key string, questions []*domain.QuizQuestion) {
	cached := make([]cachedQuestion, 0, len(questions))
	for _, q := range questions {
		cached = append(cached, cachedQuestion{
			ID:            q.ID,
			ArticleID:     q.ArticleID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			CreatedAt:     q.CreatedAt,
		})
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		logger.Get().Warn("Quiz cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, string(raw), c.ttl); err != nil {
		logger.Get().Warn("Quiz cache write failed", zap.String("key", key), zap.Error(err))
	}
}
