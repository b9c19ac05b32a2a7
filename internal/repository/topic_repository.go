package repository

import (
	"errors"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/util"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) Create(topic *model.Topic) error {
	err := r.DB.Create(topic).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrSlugTaken
	}
	return err
}

func (r *TopicRepository) FindAll() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Order("name asc").Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) FindByID(id string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// FindBySlug 未命中时返回引用原始slug的NotFound错误
func (r *TopicRepository) FindBySlug(slug string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTopicSlugNotFound(slug)
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *TopicRepository) Update(topic *model.Topic) error {
	err := r.DB.Save(topic).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return util.ErrSlugTaken
	}
	return err
}

// DeleteCascade 同一事务内先删题目再删主题
// 题目被视为主题的从属数据，随主题一起清理
func (r *TopicRepository) DeleteCascade(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Topic{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return util.ErrTopicNotFound
		}
		return nil
	})
}
