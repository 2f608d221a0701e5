package repository

import (
	"testing"

	"github.com/bizlens/analysis-backend/internal/entity"
)

var cacheProfile = entity.CompanyProfile{Name: "Acme", Industry: "Logistics"}

var cacheQuestions = []entity.Question{
	{Type: entity.QuestionTypeFreeText, Text: "Key product?"},
}

func TestQuestionCachePutGet(t *testing.T) {
	c := NewQuestionMemoryCache()

	if _, found := c.Get(entity.TaskStrategicPlanning, cacheProfile); found {
		t.Fatal("Get() on empty cache reported a hit")
	}

	c.Put(entity.TaskStrategicPlanning, cacheProfile, cacheQuestions)

	got, found := c.Get(entity.TaskStrategicPlanning, cacheProfile)
	if !found {
		t.Fatal("Get() after Put() reported a miss")
	}
	if len(got) != 1 || got[0].Text != "Key product?" {
		t.Fatalf("Get() = %+v, want cached questions", got)
	}
}

func TestQuestionCacheKeyDiscriminatesTaskAndProfile(t *testing.T) {
	c := NewQuestionMemoryCache()
	c.Put(entity.TaskStrategicPlanning, cacheProfile, cacheQuestions)

	// Different task, same profile.
	if _, found := c.Get(entity.TaskOperationalEfficiency, cacheProfile); found {
		t.Error("cache hit across different tasks")
	}

	// Same task, different profile.
	other := entity.CompanyProfile{Name: "Other Co", Industry: "Logistics"}
	if _, found := c.Get(entity.TaskStrategicPlanning, other); found {
		t.Error("cache hit across different profiles")
	}
}

func TestQuestionCacheKeyIgnoresWhitespace(t *testing.T) {
	c := NewQuestionMemoryCache()
	c.Put(entity.TaskStrategicPlanning, cacheProfile, cacheQuestions)

	padded := entity.CompanyProfile{Name: "  Acme ", Industry: " Logistics  "}
	if _, found := c.Get(entity.TaskStrategicPlanning, padded); !found {
		t.Error("whitespace-only profile difference caused a cache miss")
	}
}

func TestQuestionCacheReturnsCopies(t *testing.T) {
	c := NewQuestionMemoryCache()
	c.Put(entity.TaskStrategicPlanning, cacheProfile, cacheQuestions)

	got, _ := c.Get(entity.TaskStrategicPlanning, cacheProfile)
	got[0].Text = "mutated"

	again, _ := c.Get(entity.TaskStrategicPlanning, cacheProfile)
	if again[0].Text != "Key product?" {
		t.Error("mutating a Get() result changed the cached value")
	}
}

func TestQuestionCacheClear(t *testing.T) {
	c := NewQuestionMemoryCache()
	c.Put(entity.TaskStrategicPlanning, cacheProfile, cacheQuestions)
	c.Clear()

	if _, found := c.Get(entity.TaskStrategicPlanning, cacheProfile); found {
		t.Error("Get() after Clear() reported a hit")
	}
}
