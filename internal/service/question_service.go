package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/repository"
	"quiz_catalog_backend/internal/util"
	"quiz_catalog_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	topicQuestionsKeyPrefix = "questions:topic:"
	topicQuestionsCacheTTL  = 5 * time.Minute
)

type QuestionService struct {
	Repo      *repository.QuestionRepository
	TopicRepo *repository.TopicRepository
	Redis     *redis.Client
}

func NewQuestionService(repo *repository.QuestionRepository, topicRepo *repository.TopicRepository, rdb *redis.Client) *QuestionService {
	return &QuestionService{Repo: repo, TopicRepo: topicRepo, Redis: rdb}
}

// validateDraft 单条题目校验，错误信息直接面向调用方
func validateDraft(d model.QuestionDraft) error {
	if strings.TrimSpace(d.Question) == "" {
		return fmt.Errorf("%w: question text is required", util.ErrInvalidQuestion)
	}
	if len(d.Options) == 0 {
		return fmt.Errorf("%w: at least one option is required", util.ErrInvalidQuestion)
	}
	if len(d.Options) > 26 {
		return fmt.Errorf("%w: at most 26 options are supported", util.ErrInvalidQuestion)
	}
	if len(d.CorrectAnswer) == 0 {
		return fmt.Errorf("%w: at least one correct answer is required", util.ErrInvalidQuestion)
	}
	optionSet := make(map[string]bool, len(d.Options))
	for _, opt := range d.Options {
		optionSet[opt] = true
	}
	for _, ans := range d.CorrectAnswer {
		if !optionSet[ans] {
			return fmt.Errorf("%w: correct answer %q is not among the options", util.ErrInvalidQuestion, ans)
		}
	}
	if _, err := model.ParseQuestionType(string(d.QuestionType)); err != nil {
		return err
	}
	if d.Difficulty != nil {
		if _, err := model.ParseDifficulty(string(*d.Difficulty)); err != nil {
			return err
		}
	}
	return nil
}

// draftToQuestion 组装持久化实体，difficulty缺省补medium
func draftToQuestion(topicID string, d model.QuestionDraft) *model.Question {
	difficulty := model.DifficultyMedium
	if d.Difficulty != nil {
		difficulty = *d.Difficulty
	}
	return &model.Question{
		TopicID:        topicID,
		QuestionNumber: d.QuestionNumber,
		Question:       d.Question,
		Options:        d.Options,
		CorrectAnswer:  d.CorrectAnswer,
		Explanation:    d.Explanation,
		QuestionType:   d.QuestionType,
		Difficulty:     difficulty,
		Tags:           d.Tags,
	}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req model.CreateQuestionRequest) (*model.Question, error) {
	if err := validateDraft(req.QuestionDraft); err != nil {
		return nil, err
	}
	if _, err := s.TopicRepo.FindByID(req.TopicID); err != nil {
		return nil, err
	}

	question := draftToQuestion(req.TopicID, req.QuestionDraft)
	if err := s.Repo.Create(question); err != nil {
		return nil, err
	}
	s.invalidateTopicCache(ctx, req.TopicID)
	return question, nil
}

func (s *QuestionService) GetQuestion(id string) (*model.Question, error) {
	return s.Repo.FindByID(id)
}

func (s *QuestionService) ListQuestions(page, limit int) ([]model.Question, int64, int, int, error) {
	page, limit = util.NormalizePage(page, limit)
	questions, total, err := s.Repo.FindPage(page, limit)
	return questions, total, page, limit, err
}

// GetQuestionsByTopic 带短TTL的读缓存，写操作按主题失效
func (s *QuestionService) GetQuestionsByTopic(ctx context.Context, topicID string) ([]model.Question, error) {
	if _, err := s.TopicRepo.FindByID(topicID); err != nil {
		return nil, err
	}

	cacheKey := topicQuestionsKeyPrefix + topicID
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached []model.Question
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("question cache read failed", zap.Error(err))
		}
	}

	questions, err := s.Repo.FindByTopic(topicID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, topicQuestionsCacheTTL).Err(); err != nil {
				logger.Log.Warn("question cache write failed", zap.Error(err))
			}
		}
	}
	return questions, nil
}

func (s *QuestionService) GetQuestionsByType(questionType string) ([]model.Question, error) {
	qType, err := model.ParseQuestionType(strings.ToLower(questionType))
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByType(qType)
}

func (s *QuestionService) SearchQuestions(query string) ([]model.Question, error) {
	return s.Repo.Search(query)
}

// UpdateQuestion 部分更新，校验更新后的整体形态
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, req model.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	previousTopicID := question.TopicID

	if req.TopicID != nil {
		if _, err := s.TopicRepo.FindByID(*req.TopicID); err != nil {
			return nil, err
		}
		question.TopicID = *req.TopicID
	}
	if req.QuestionNumber != nil {
		question.QuestionNumber = *req.QuestionNumber
	}
	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Options != nil {
		question.Options = req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = req.CorrectAnswer
	}
	if req.Explanation != nil {
		question.Explanation = *req.Explanation
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}
	if req.Tags != nil {
		question.Tags = req.Tags
	}

	if err := validateDraft(model.QuestionDraft{
		QuestionNumber: question.QuestionNumber,
		Question:       question.Question,
		Options:        question.Options,
		CorrectAnswer:  question.CorrectAnswer,
		Explanation:    question.Explanation,
		QuestionType:   question.QuestionType,
		Difficulty:     &question.Difficulty,
		Tags:           question.Tags,
	}); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(question); err != nil {
		return nil, err
	}
	s.invalidateTopicCache(ctx, previousTopicID)
	if question.TopicID != previousTopicID {
		s.invalidateTopicCache(ctx, question.TopicID)
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	question, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateTopicCache(ctx, question.TopicID)
	return nil
}

func (s *QuestionService) invalidateTopicCache(ctx context.Context, topicID string) {
	invalidateTopicQuestionsCache(ctx, s.Redis, topicID)
}

// invalidateTopicQuestionsCache 所有写路径共用的缓存失效入口
// 单条写入和批量导入都必须走这里，否则读侧会拿到过期列表
func invalidateTopicQuestionsCache(ctx context.Context, rdb *redis.Client, topicID string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, topicQuestionsKeyPrefix+topicID).Err(); err != nil {
		logger.Log.Warn("question cache invalidation failed", zap.Error(err))
	}
}
