package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"quiz_catalog_backend/internal/util"
)

// QuestionType 题目类型，封闭枚举，小写存储
type QuestionType string

const (
	QuestionTypeSingle   QuestionType = "single"
	QuestionTypeMultiple QuestionType = "multiple"
)

func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(s) {
	case QuestionTypeSingle, QuestionTypeMultiple:
		return QuestionType(s), nil
	}
	return "", util.ErrInvalidQuestionType
}

// Difficulty 难度等级，缺省为 medium
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", util.ErrInvalidDifficulty
}

// StringArray JSON列存储的有序字符串数组
// 顺序即语义：选项的存储顺序决定输出时的字母标注
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return fmt.Errorf("unsupported type %T for StringArray", value)
}

// swagger:model
type Question struct {
	UUIDBase
	TopicID        string       `gorm:"type:varchar(36);not null;index" json:"topicId"`
	QuestionNumber int          `gorm:"not null" json:"questionNumber"`
	Question       string       `gorm:"type:text;not null" json:"question"`
	Options        StringArray  `gorm:"type:json;not null" json:"options"`
	CorrectAnswer  StringArray  `gorm:"type:json;not null" json:"correctAnswer"`
	Explanation    string       `gorm:"type:text" json:"explanation"`
	QuestionType   QuestionType `gorm:"size:16;not null" json:"questionType"`
	Difficulty     Difficulty   `gorm:"size:16;not null;default:medium" json:"difficulty"`
	Tags           StringArray  `gorm:"type:json" json:"tags,omitempty"`
}

// QuestionView 对外展示形态：在持久化字段之外附加字母标注的选项映射
type QuestionView struct {
	Question
	OptionMap map[string]string `json:"optionMap"`
}

func (q Question) View() QuestionView {
	return QuestionView{
		Question:  q,
		OptionMap: util.OptionDisplayMap(q.Options),
	}
}

func ViewList(questions []Question) []QuestionView {
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = q.View()
	}
	return views
}

// QuestionDraft 批量导入的单条题目，difficulty缺省为medium
type QuestionDraft struct {
	QuestionNumber int          `json:"questionNumber"`
	Question       string       `json:"question"`
	Options        []string     `json:"options"`
	CorrectAnswer  []string     `json:"correctAnswer"`
	Explanation    string       `json:"explanation"`
	QuestionType   QuestionType `json:"questionType"`
	Difficulty     *Difficulty  `json:"difficulty"`
	Tags           []string     `json:"tags"`
}

type CreateQuestionRequest struct {
	TopicID string `json:"topicId" binding:"required"`
	QuestionDraft
}

type UpdateQuestionRequest struct {
	TopicID        *string       `json:"topicId"`
	QuestionNumber *int          `json:"questionNumber"`
	Question       *string       `json:"question"`
	Options        []string      `json:"options"`
	CorrectAnswer  []string      `json:"correctAnswer"`
	Explanation    *string       `json:"explanation"`
	QuestionType   *QuestionType `json:"questionType"`
	Difficulty     *Difficulty   `json:"difficulty"`
	Tags           []string      `json:"tags"`
}

type BulkCreateRequest struct {
	TopicSlug string          `json:"topicSlug" binding:"required"`
	Questions []QuestionDraft `json:"questions"`
}

// BulkResult 批量导入结果，整批要么全部落库要么全部回滚
// created/failed只用于诊断，不代表部分持久化
type BulkResult struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}
