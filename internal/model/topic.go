package model

// swagger:model
type Topic struct {
	UUIDBase
	Name        string  `gorm:"size:255;not null" json:"name"`
	Slug        string  `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
}

type CreateTopicRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// UpdateTopicRequest 未提供的字段保持不变
// 只改name不提供slug时，slug不会被重新生成，避免破坏已有外部链接
type UpdateTopicRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}
