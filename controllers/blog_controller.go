package controllers

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strconv"

	"hotelpms/config"
	"hotelpms/dto"
	"hotelpms/errors"
	"hotelpms/models"
	"hotelpms/response"
	"hotelpms/services"
	"hotelpms/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func convertToBlogPostResponse(post models.BlogPost) dto.BlogPostResponse {
	resp := dto.BlogPostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   post.Content,
		Cover:     post.Cover,
		Tags:      post.Tags,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		resp.Author = &dto.ActorResponse{
			ID:    post.Author.ID,
			Name:  post.Author.Name,
			Email: post.Author.Email,
		}
	}
	return resp
}

// uniqueSlug derives a slug from the title and suffixes it with a counter
// until no other post holds it.
func uniqueSlug(title string, excludeID uint) string {
	base := services.Slugify(title)
	if base == "" {
		base = "post"
	}

	slug := base
	for i := 2; ; i++ {
		var count int64
		config.DB.Model(&models.BlogPost{}).
			Where("slug = ? AND id <> ?", slug, excludeID).
			Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// isStaffRequest reports whether the request carries an authenticated staff
// identity, set by the auth middlewares.
func isStaffRequest(c *gin.Context) bool {
	_, ok := c.Get("staffID")
	return ok
}

// canViewBlogPost decides visibility of one post: drafts are staff-only,
// published posts are public.
func canViewBlogPost(post models.BlogPost, staff bool) bool {
	return post.Published || staff
}

// GetBlogPosts lists posts newest first. Unauthenticated readers only see
// published ones.
func GetBlogPosts(c *gin.Context) {
	tx := config.DB.Preload("Author")
	if !isStaffRequest(c) {
		tx = tx.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := tx.Find(&posts).Error; err != nil {
		response.DataFetchError(c, "failed to load blog posts")
		return
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	responses := make([]dto.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, convertToBlogPostResponse(post))
	}

	response.Success(c, responses)
}

// CreateBlogPost adds a draft post authored by the calling staff member.
func CreateBlogPost(c *gin.Context) {
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	post := models.BlogPost{
		Title:   req.Title,
		Slug:    uniqueSlug(req.Title, 0),
		Content: req.Content,
		Cover:   req.Cover,
		Tags:    pq.StringArray(req.Tags),
	}
	if err := validator.ValidateBlogPost(&post); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}
	if staffID, ok := c.Get("staffID"); ok {
		id := staffID.(uint)
		post.AuthorID = &id
	}

	if err := config.DB.Create(&post).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, convertToBlogPostResponse(post))
}

// GetBlogPostBySlug returns one post by its URL slug.
func GetBlogPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	if err := config.DB.Preload("Author").Where("slug = ?", slug).First(&post).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load blog post")
		return
	}

	// A draft slug looks like a missing post to the public.
	if !canViewBlogPost(post, isStaffRequest(c)) {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToBlogPostResponse(post))
}

// UpdateBlogPost edits a post. A title change re-derives the slug.
func UpdateBlogPost(c *gin.Context) {
	var req dto.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "Blog post id is required")
		return
	}

	var post models.BlogPost
	if err := config.DB.First(&post, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load blog post")
		return
	}

	if req.Title != "" && req.Title != post.Title {
		post.Title = req.Title
		post.Slug = uniqueSlug(req.Title, post.ID)
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.Cover != "" {
		post.Cover = req.Cover
	}
	if req.Tags != nil {
		post.Tags = pq.StringArray(req.Tags)
	}

	if err := config.DB.Save(&post).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, convertToBlogPostResponse(post))
}

// PublishBlogPost flips a post's published flag.
func PublishBlogPost(c *gin.Context) {
	var req struct {
		ID        uint `json:"id" binding:"required"`
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var post models.BlogPost
	if err := config.DB.First(&post, req.ID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.DataFetchError(c, "failed to load blog post")
		return
	}

	if err := config.DB.Model(&post).Update("published", req.Published).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	post.Published = req.Published
	response.Success(c, convertToBlogPostResponse(post))
}

// DeleteBlogPost removes a post.
func DeleteBlogPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid blog post id")
		return
	}

	if err := config.DB.Delete(&models.BlogPost{}, id).Error; err != nil {
		response.MutationError(c, "")
		return
	}

	response.Success(c, nil)
}
