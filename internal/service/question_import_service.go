package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/repository"
	"quiz_catalog_backend/internal/util"
	"quiz_catalog_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestionImportService 批量导入管道
// 一次调用独占一个事务；整批要么全部提交要么全部回滚
type QuestionImportService struct {
	TopicRepo    *repository.TopicRepository
	QuestionRepo *repository.QuestionRepository
	Storage      *StorageService
	DB           *gorm.DB
	Redis        *redis.Client
}

func NewQuestionImportService(topicRepo *repository.TopicRepository, questionRepo *repository.QuestionRepository, storage *StorageService, db *gorm.DB, rdb *redis.Client) *QuestionImportService {
	return &QuestionImportService{
		TopicRepo:    topicRepo,
		QuestionRepo: questionRepo,
		Storage:      storage,
		DB:           db,
		Redis:        rdb,
	}
}

// BulkCreate 按提交顺序把整批题目导入slug指定的主题
//
// 流程：
//  1. slug解析失败直接返回NotFound，不开事务
//  2. 整批共用一个事务，循环总是跑完全部条目再做提交/回滚决策
//  3. failed == 0 才提交；否则整批回滚，已成功的条目一并丢弃
//
// 半途而废的题库比整批拒绝更糟：调用方修完重新提交即可
func (s *QuestionImportService) BulkCreate(ctx context.Context, topicSlug string, drafts []model.QuestionDraft) (*model.BulkResult, error) {
	topic, err := s.TopicRepo.FindBySlug(topicSlug)
	if err != nil {
		return nil, err
	}

	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	result := &model.BulkResult{Errors: []string{}}
	for i, draft := range drafts {
		if err := s.insertDraft(tx, topic.ID, draft); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Question %d: %v", i+1, err))
			continue
		}
		result.Created++
	}

	if result.Failed == 0 {
		if err := tx.Commit().Error; err != nil {
			return nil, fmt.Errorf("%w: commit: %v", util.ErrTxFinalize, err)
		}
		// 提交成功后该主题的题目列表缓存已经过期
		invalidateTopicQuestionsCache(ctx, s.Redis, topic.ID)
	} else {
		if err := tx.Rollback().Error; err != nil {
			return nil, fmt.Errorf("%w: rollback: %v", util.ErrTxFinalize, err)
		}
	}

	logger.Log.Info("bulk question import finished",
		zap.String("topicSlug", topicSlug),
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed))
	return result, nil
}

// isObjectMissing 识别两种存储后端的"对象不存在"错误
func isObjectMissing(err error) bool {
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}

func (s *QuestionImportService) insertDraft(tx *gorm.DB, topicID string, draft model.QuestionDraft) error {
	if err := validateDraft(draft); err != nil {
		return err
	}
	return s.QuestionRepo.CreateTx(tx, draftToQuestion(topicID, draft))
}

// questionBankFile 上传的题库文件格式，与批量导入请求体一致
type questionBankFile struct {
	TopicSlug string                `json:"topicSlug"`
	Questions []model.QuestionDraft `json:"questions"`
}

// ImportFromStorage 读取已上传的题库文件并走同一条批量导入管道
func (s *QuestionImportService) ImportFromStorage(ctx context.Context, objectName string) (*model.BulkResult, error) {
	reader, err := s.Storage.Fetch(ctx, objectName)
	if err != nil {
		if isObjectMissing(err) {
			return nil, fmt.Errorf("%w: '%s'", util.ErrImportFileNotFound, objectName)
		}
		return nil, fmt.Errorf("failed to fetch question bank file: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		// minio的GetObject是惰性的，对象不存在要到第一次读取才暴露
		if isObjectMissing(err) {
			return nil, fmt.Errorf("%w: '%s'", util.ErrImportFileNotFound, objectName)
		}
		return nil, fmt.Errorf("failed to read question bank file: %w", err)
	}

	var bank questionBankFile
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrInvalidImportFile, err)
	}
	if bank.TopicSlug == "" {
		return nil, fmt.Errorf("%w: missing topicSlug", util.ErrInvalidImportFile)
	}

	return s.BulkCreate(ctx, bank.TopicSlug, bank.Questions)
}
