package repository

import (
	"encoding/json"
	"fmt"

	"github.com/bizlens/analysis-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

// QuestionMemoryCache maps (task, normalized company profile) to a generated
// question list so that identical input never triggers a second model call.
// There is no eviction policy of its own; Clear is called on session reset.
type QuestionMemoryCache struct {
	cache *gocache.Cache
}

func NewQuestionMemoryCache() *QuestionMemoryCache {
	return &QuestionMemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// CacheKey builds a deterministic key from the task and the normalized
// profile. encoding/json marshals struct fields in declaration order, so
// equal profiles always produce equal keys.
func CacheKey(task entity.Task, profile entity.CompanyProfile) string {
	data, err := json.Marshal(profile.Normalized())
	if err != nil {
		// CompanyProfile is all strings; marshalling cannot realistically fail.
		return fmt.Sprintf("%s|%+v", task, profile.Normalized())
	}
	return fmt.Sprintf("%s|%s", task, data)
}

func (c *QuestionMemoryCache) Get(task entity.Task, profile entity.CompanyProfile) ([]entity.Question, bool) {
	v, found := c.cache.Get(CacheKey(task, profile))
	if !found {
		return nil, false
	}

	questions, ok := v.([]entity.Question)
	if !ok {
		return nil, false
	}

	out := make([]entity.Question, len(questions))
	copy(out, questions)
	return out, true
}

func (c *QuestionMemoryCache) Put(task entity.Task, profile entity.CompanyProfile, questions []entity.Question) {
	stored := make([]entity.Question, len(questions))
	copy(stored, questions)
	c.cache.Set(CacheKey(task, profile), stored, gocache.NoExpiration)
}

func (c *QuestionMemoryCache) Clear() {
	c.cache.Flush()
}
