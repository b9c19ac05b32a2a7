package service

import (
	"fmt"
	"testing"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Topic{}, &model.Question{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTopicService(db *gorm.DB) *TopicService {
	return NewTopicService(repository.NewTopicRepository(db), nil)
}

func newQuestionService(db *gorm.DB) *QuestionService {
	return NewQuestionService(repository.NewQuestionRepository(db), repository.NewTopicRepository(db), nil)
}

func newImportService(db *gorm.DB) *QuestionImportService {
	return NewQuestionImportService(
		repository.NewTopicRepository(db),
		repository.NewQuestionRepository(db),
		nil,
		db,
		nil,
	)
}

func mustCreateTopic(t *testing.T, s *TopicService, name string) *model.Topic {
	t.Helper()
	topic, err := s.CreateTopic(model.CreateTopicRequest{Name: name})
	if err != nil {
		t.Fatalf("failed to create topic %q: %v", name, err)
	}
	return topic
}

func validDraft(number int) model.QuestionDraft {
	return model.QuestionDraft{
		QuestionNumber: number,
		Question:       fmt.Sprintf("What is the capital of France? (#%d)", number),
		Options:        []string{"Paris", "London", "Berlin"},
		CorrectAnswer:  []string{"Paris"},
		Explanation:    "Paris has been the capital since 987.",
		QuestionType:   model.QuestionTypeSingle,
	}
}
