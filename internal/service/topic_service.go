package service

import (
	"context"
	"strings"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/repository"
	"quiz_catalog_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

type TopicService struct {
	Repo  *repository.TopicRepository
	Redis *redis.Client
}

func NewTopicService(repo *repository.TopicRepository, rdb *redis.Client) *TopicService {
	return &TopicService{Repo: repo, Redis: rdb}
}

func (s *TopicService) CreateTopic(req model.CreateTopicRequest) (*model.Topic, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, util.ErrTopicNameRequired
	}

	// slug缺省或留空时从名称自动生成；唯一性冲突由存储层上报
	slug := ""
	if req.Slug != nil {
		slug = strings.TrimSpace(*req.Slug)
	}
	if slug == "" {
		slug = util.DeriveSlug(req.Name)
	}

	topic := &model.Topic{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}
	if err := s.Repo.Create(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) ListTopics() ([]model.Topic, error) {
	return s.Repo.FindAll()
}

func (s *TopicService) GetTopic(id string) (*model.Topic, error) {
	return s.Repo.FindByID(id)
}

func (s *TopicService) GetTopicBySlug(slug string) (*model.Topic, error) {
	return s.Repo.FindBySlug(slug)
}

// UpdateTopic 部分更新，未提供的字段保持原值
// 只改name不带slug时保留旧slug，避免重命名破坏已发布的链接
func (s *TopicService) UpdateTopic(id string, req model.UpdateTopicRequest) (*model.Topic, error) {
	topic, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, util.ErrTopicNameRequired
		}
		topic.Name = *req.Name
	}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if slug == "" && req.Name != nil {
			// 显式传了空slug且同时改名：按新名称重新生成
			slug = util.DeriveSlug(*req.Name)
		}
		if slug != "" {
			topic.Slug = slug
		}
	}
	if req.Description != nil {
		topic.Description = req.Description
	}

	if err := s.Repo.Update(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) DeleteTopic(ctx context.Context, id string) error {
	if err := s.Repo.DeleteCascade(id); err != nil {
		return err
	}
	invalidateTopicQuestionsCache(ctx, s.Redis, id)
	return nil
}
