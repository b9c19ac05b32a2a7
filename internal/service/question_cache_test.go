package service

import (
	"testing"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// newCacheBackedServices 搭一套带真实redis协议的服务，缓存行为可直接断言
func newCacheBackedServices(t *testing.T) (*QuestionService, *QuestionImportService, *TopicService, *miniredis.Miniredis) {
	t.Helper()

	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	topicRepo := repository.NewTopicRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	questions := NewQuestionService(questionRepo, topicRepo, rdb)
	imports := NewQuestionImportService(topicRepo, questionRepo, nil, db, rdb)
	return questions, imports, NewTopicService(topicRepo, rdb), mr
}

func TestBulkCreateInvalidatesTopicQuestionCache(t *testing.T) {
	questions, imports, topics, mr := newCacheBackedServices(t)
	topic := mustCreateTopic(t, topics, "World History")
	cacheKey := topicQuestionsKeyPrefix + topic.ID

	before, err := questions.GetQuestionsByTopic(t.Context(), topic.ID)
	if err != nil {
		t.Fatalf("GetQuestionsByTopic: %v", err)
	}
	if len(before) != 0 {
		t.Fatalf("fresh topic has %d questions, want 0", len(before))
	}
	if !mr.Exists(cacheKey) {
		t.Fatalf("expected %q to be cached after first read", cacheKey)
	}

	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		validDraft(1),
		validDraft(2),
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if result.Created != 2 || result.Failed != 0 {
		t.Fatalf("result = %+v, want {Created:2 Failed:0}", result)
	}

	if mr.Exists(cacheKey) {
		t.Errorf("cache entry %q survived a committed bulk import", cacheKey)
	}
	after, err := questions.GetQuestionsByTopic(t.Context(), topic.ID)
	if err != nil {
		t.Fatalf("GetQuestionsByTopic: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("read after bulk import returned %d questions, want 2", len(after))
	}
}

func TestDeleteTopicDropsQuestionCache(t *testing.T) {
	questions, imports, topics, mr := newCacheBackedServices(t)
	topic := mustCreateTopic(t, topics, "World History")
	cacheKey := topicQuestionsKeyPrefix + topic.ID

	if _, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{validDraft(1)}); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if _, err := questions.GetQuestionsByTopic(t.Context(), topic.ID); err != nil {
		t.Fatalf("GetQuestionsByTopic: %v", err)
	}
	if !mr.Exists(cacheKey) {
		t.Fatalf("expected %q to be cached after read", cacheKey)
	}

	if err := topics.DeleteTopic(t.Context(), topic.ID); err != nil {
		t.Fatalf("DeleteTopic: %v", err)
	}
	if mr.Exists(cacheKey) {
		t.Errorf("cache entry %q survived topic deletion", cacheKey)
	}
}

func TestBulkCreateRollbackLeavesCacheIntact(t *testing.T) {
	questions, imports, topics, mr := newCacheBackedServices(t)
	topic := mustCreateTopic(t, topics, "World History")
	cacheKey := topicQuestionsKeyPrefix + topic.ID

	if _, err := questions.GetQuestionsByTopic(t.Context(), topic.ID); err != nil {
		t.Fatalf("GetQuestionsByTopic: %v", err)
	}

	bad := validDraft(2)
	bad.CorrectAnswer = []string{"Madrid"}
	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{validDraft(1), bad})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if result.Failed != 1 {
		t.Fatalf("result = %+v, want one failed entry", result)
	}

	// 整批回滚后库里没有新数据，缓存仍然是对的
	if !mr.Exists(cacheKey) {
		t.Errorf("rolled back import should not touch cache entry %q", cacheKey)
	}
	after, err := questions.GetQuestionsByTopic(t.Context(), topic.ID)
	if err != nil {
		t.Fatalf("GetQuestionsByTopic: %v", err)
	}
	if len(after) != 0 {
		t.Errorf("rolled back import left %d questions visible, want 0", len(after))
	}
}
