package posts

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostRequest struct {
	Title         string   `json:"title" binding:"required"`
	Summary       string   `json:"summary"`
	Content       string   `json:"content"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
	FeaturedImage string   `json:"featuredImage"`
}

// GET /posts
// ?status=published narrows for the storefront blog.
func ListPosts(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var posts []content.Post
	if err := q.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GET /posts/:id
func GetPost(c *gin.Context) {
	var post content.Post
	if err := database.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func normalizeStatus(s string) (string, bool) {
	switch s {
	case "":
		return content.PostDraft, true
	case content.PostDraft, content.PostPublished:
		return s, true
	}
	return "", false
}

// POST /posts
func CreatePost(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := normalizeStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be draft or published"})
		return
	}

	var post content.Post
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		slug, err := content.EnsureUniqueSlug(tx, "posts", content.MakeSlug(req.Title), "")
		if err != nil {
			return err
		}

		post = content.Post{
			Title:         req.Title,
			Slug:          slug,
			Summary:       req.Summary,
			Content:       req.Content,
			Tags:          req.Tags,
			Status:        status,
			FeaturedImage: req.FeaturedImage,
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": post.ID, "slug": post.Slug})
}

// PUT /posts/:id
func UpdatePost(c *gin.Context) {
	id := c.Param("id")

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, ok := normalizeStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be draft or published"})
		return
	}

	var post content.Post
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Title != post.Title {
			slug, err := content.EnsureUniqueSlug(tx, "posts", content.MakeSlug(req.Title), post.ID)
			if err != nil {
				return err
			}
			post.Slug = slug
		}

		post.Title = req.Title
		post.Summary = req.Summary
		post.Content = req.Content
		post.Tags = req.Tags
		post.Status = status
		post.FeaturedImage = req.FeaturedImage

		return tx.Save(&post).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
}

// DELETE /posts/:id
func DeletePost(c *gin.Context) {
	res := database.DB.Delete(&content.Post{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
