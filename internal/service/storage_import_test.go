package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz_catalog_backend/internal/config"
	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/util"
)

func newLocalStorage(t *testing.T) *StorageService {
	t.Helper()
	return &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}
}

func TestImportFromStorage(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	storage := newLocalStorage(t)
	imports := NewQuestionImportService(
		newTopicService(db).Repo,
		newQuestionService(db).Repo,
		storage,
		db,
		nil,
	)

	bank := `{
		"topicSlug": "` + topic.Slug + `",
		"questions": [
			{
				"questionNumber": 1,
				"question": "What is the capital of France?",
				"options": ["Paris", "London"],
				"correctAnswer": ["Paris"],
				"explanation": "Paris.",
				"questionType": "single"
			}
		]
	}`
	local := storage.Provider.(*LocalStorageProvider)
	if err := os.WriteFile(filepath.Join(local.Config.LocalPath, "bank.json"), []byte(bank), 0644); err != nil {
		t.Fatalf("write bank file: %v", err)
	}

	result, err := imports.ImportFromStorage(t.Context(), "bank.json")
	if err != nil {
		t.Fatalf("ImportFromStorage: %v", err)
	}
	if result.Created != 1 || result.Failed != 0 {
		t.Errorf("result = %+v, want {Created:1 Failed:0}", result)
	}

	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("persisted questions = %d, want 1", count)
	}
}

func TestImportFromStorageInvalidFile(t *testing.T) {
	db := newTestDB(t)
	storage := newLocalStorage(t)
	imports := NewQuestionImportService(
		newTopicService(db).Repo,
		newQuestionService(db).Repo,
		storage,
		db,
		nil,
	)

	local := storage.Provider.(*LocalStorageProvider)
	if err := os.WriteFile(filepath.Join(local.Config.LocalPath, "broken.json"), []byte("not json"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := imports.ImportFromStorage(t.Context(), "broken.json")
	if !errors.Is(err, util.ErrInvalidImportFile) {
		t.Errorf("error = %v, want ErrInvalidImportFile", err)
	}

	if err := os.WriteFile(filepath.Join(local.Config.LocalPath, "noslug.json"), []byte(`{"questions":[]}`), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err = imports.ImportFromStorage(t.Context(), "noslug.json")
	if !errors.Is(err, util.ErrInvalidImportFile) {
		t.Errorf("error = %v, want ErrInvalidImportFile", err)
	}
}

// 文件不存在属于NotFound类错误，不能当内部错误处理
func TestImportFromStorageMissingFile(t *testing.T) {
	db := newTestDB(t)
	imports := NewQuestionImportService(
		newTopicService(db).Repo,
		newQuestionService(db).Repo,
		newLocalStorage(t),
		db,
		nil,
	)

	_, err := imports.ImportFromStorage(t.Context(), "question-banks/1700000000-missing.json")
	if !errors.Is(err, util.ErrImportFileNotFound) {
		t.Errorf("error = %v, want ErrImportFileNotFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), "question-banks/1700000000-missing.json") {
		t.Errorf("error %q should name the missing file", err)
	}
}
