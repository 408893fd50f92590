package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultCategory = "Uncategorized"

// Categories is the fixed set the frontend renders filter buttons from.
var Categories = []string{
	"Technology",
	"Lifestyle",
	"Business",
	"Travel",
	"Food",
	"Health",
	"Education",
	"Entertainment",
}

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Title     string    `json:"title" binding:"required"`
	Author    string    `json:"author" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	Category  string    `json:"category" gorm:"default:Uncategorized"`
	ImageURL  string    `json:"imageUrl" gorm:"column:image_url"`
	Likes     int       `json:"likes" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
