package util

import (
	"errors"
	"fmt"
)

var (
	ErrTopicNotFound       = errors.New("topic not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrSlugTaken           = errors.New("topic slug already exists")
	ErrTopicNameRequired   = errors.New("topic name is required")
	ErrInvalidQuestionType = errors.New("invalid question type. Use 'single' or 'multiple'")
	ErrInvalidDifficulty   = errors.New("invalid difficulty. Use 'easy', 'medium' or 'hard'")
	ErrTxFinalize          = errors.New("transaction finalize failed")
	ErrInvalidImportFile   = errors.New("invalid question bank file")
	ErrImportFileNotFound  = errors.New("question bank file not found")
	ErrInvalidQuestion     = errors.New("invalid question")
)

// ErrTopicSlugNotFound 按slug查询未命中时引用原始slug，方便调用方排查
func ErrTopicSlugNotFound(slug string) error {
	return fmt.Errorf("topic with slug '%s' not found: %w", slug, ErrTopicNotFound)
}
