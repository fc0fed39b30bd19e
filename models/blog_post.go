package models

import (
	"time"

	"github.com/lib/pq"
)

type BlogPost struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug" gorm:"uniqueIndex"`
	Content   string         `json:"content" gorm:"type:text"`
	Cover     string         `json:"cover"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	Published bool           `json:"published" gorm:"default:false"`
	AuthorID  *uint          `json:"authorId"`
	Author    *Staff         `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
