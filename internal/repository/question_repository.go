package repository

import (
	"errors"

	"quiz_catalog_backend/internal/model"
	"quiz_catalog_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// CreateTx 批量导入管道的插入原语，在调用方持有的事务上执行
func (r *QuestionRepository) CreateTx(tx *gorm.DB, question *model.Question) error {
	return tx.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindPage 跨主题分页，按主题名+题号排序
func (r *QuestionRepository) FindPage(page, limit int) ([]model.Question, int64, error) {
	var questions []model.Question
	var total int64

	if err := r.DB.Model(&model.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.DB.
		Joins("JOIN topics ON topics.id = questions.topic_id").
		Order("topics.name asc, questions.question_number asc").
		Limit(limit).Offset(offset).
		Find(&questions).Error
	return questions, total, err
}

func (r *QuestionRepository) FindByTopic(topicID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("topic_id = ?", topicID).
		Order("question_number asc").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByType(questionType model.QuestionType) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.
		Joins("JOIN topics ON topics.id = questions.topic_id").
		Where("questions.question_type = ?", questionType).
		Order("topics.name asc, questions.question_number asc").
		Find(&questions).Error
	return questions, err
}

// Search 在题干、解析和主题名上做子串匹配
func (r *QuestionRepository) Search(query string) ([]model.Question, error) {
	var questions []model.Question
	pattern := "%" + query + "%"
	err := r.DB.
		Joins("JOIN topics ON topics.id = questions.topic_id").
		Where("questions.question LIKE ? OR questions.explanation LIKE ? OR topics.name LIKE ?",
			pattern, pattern, pattern).
		Order("topics.name asc, questions.question_number asc").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	result := r.DB.Delete(&model.Question{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrQuestionNotFound
	}
	return nil
}
