package service

import (
	"errors"
	"strings"
	"testing"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/util"
)

func TestBulkCreateAllValid(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		validDraft(1), validDraft(2), validDraft(3),
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	if result.Created != 3 || result.Failed != 0 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want {Created:3 Failed:0 Errors:[]}", result)
	}

	// 提交后整批可见
	var count int64
	if err := db.Model(&model.Question{}).Where("topic_id = ?", topic.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("persisted questions = %d, want 3", count)
	}
}

func TestBulkCreateMidBatchFailureRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	bad := validDraft(2)
	bad.CorrectAnswer = []string{"Madrid"} // 不在选项里

	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		validDraft(1), bad, validDraft(3),
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if result.Created != 2 {
		t.Errorf("Created = %d, want 2 (diagnostic count only)", result.Created)
	}
	if len(result.Errors) != 1 || !strings.HasPrefix(result.Errors[0], "Question 2: ") {
		t.Errorf("Errors = %v, want one entry prefixed \"Question 2: \"", result.Errors)
	}

	// 整批回滚：第1、3条虽然单独有效，也不能落库
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("persisted questions after rollback = %d, want 0", count)
	}
}

func TestBulkCreateUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	imports := newImportService(db)

	_, err := imports.BulkCreate(t.Context(), "no-such-topic", []model.QuestionDraft{validDraft(1)})
	if !errors.Is(err, util.ErrTopicNotFound) {
		t.Fatalf("error = %v, want ErrTopicNotFound", err)
	}
	if !strings.Contains(err.Error(), "'no-such-topic'") {
		t.Errorf("error %q does not quote the slug", err.Error())
	}

	// slug解析失败时不开事务，不产生任何行
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("questions created = %d, want 0", count)
	}
}

func TestBulkCreateDefaultsDifficulty(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	hard := model.DifficultyHard
	withDifficulty := validDraft(2)
	withDifficulty.Difficulty = &hard

	if _, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		validDraft(1), withDifficulty,
	}); err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	var questions []model.Question
	if err := db.Order("question_number asc").Find(&questions).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if questions[0].Difficulty != model.DifficultyMedium {
		t.Errorf("difficulty = %q, want default %q", questions[0].Difficulty, model.DifficultyMedium)
	}
	if questions[1].Difficulty != model.DifficultyHard {
		t.Errorf("difficulty = %q, want explicit %q", questions[1].Difficulty, model.DifficultyHard)
	}
}

func TestBulkCreateReportsAllFailures(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	noText := validDraft(1)
	noText.Question = ""
	noOptions := validDraft(3)
	noOptions.Options = nil
	noOptions.CorrectAnswer = nil

	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		noText, validDraft(2), noOptions,
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}

	// 循环总是跑完全部条目，逐条记录诊断
	if result.Failed != 2 || len(result.Errors) != 2 {
		t.Fatalf("result = %+v, want 2 failures with 2 diagnostics", result)
	}
	if !strings.HasPrefix(result.Errors[0], "Question 1: ") {
		t.Errorf("Errors[0] = %q, want prefix \"Question 1: \"", result.Errors[0])
	}
	if !strings.HasPrefix(result.Errors[1], "Question 3: ") {
		t.Errorf("Errors[1] = %q, want prefix \"Question 3: \"", result.Errors[1])
	}
}

func TestBulkCreateDuplicateQuestionNumbersAccepted(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	// question_number不是唯一键，批内重复静默接受
	result, err := imports.BulkCreate(t.Context(), topic.Slug, []model.QuestionDraft{
		validDraft(7), validDraft(7),
	})
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if result.Created != 2 || result.Failed != 0 {
		t.Errorf("result = %+v, want both accepted", result)
	}
}

func TestBulkCreateEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	topic := mustCreateTopic(t, newTopicService(db), "World History")
	imports := newImportService(db)

	result, err := imports.BulkCreate(t.Context(), topic.Slug, nil)
	if err != nil {
		t.Fatalf("BulkCreate: %v", err)
	}
	if result.Created != 0 || result.Failed != 0 || len(result.Errors) != 0 {
		t.Errorf("result = %+v, want empty result", result)
	}
}
