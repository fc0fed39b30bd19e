package dto

import "time"

type BlogPostRequest struct {
	ID      uint     `json:"id"`
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Cover   string   `json:"cover"`
	Tags    []string `json:"tags"`
}

type BlogPostResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Cover     string    `json:"cover"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Author    *ActorResponse `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
