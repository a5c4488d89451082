package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/dto"
)

// ListSocialAccounts godoc
// @Summary List connected social accounts
// @Tags social
// @Accept json
// @Produce json
// @Success 200 {array} models.SocialAccount
// @Router /social/accounts [get]
func ListSocialAccounts(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	accounts, err := socialService.ListAccounts(userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve accounts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   accounts,
	})
}

// CreateSocialAccount godoc
// @Summary Connect a social account
// @Tags social
// @Accept json
// @Produce json
// @Param account body dto.CreateSocialAccountRequest true "Account Data"
// @Success 201 {object} models.SocialAccount
// @Router /social/accounts [post]
func CreateSocialAccount(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateSocialAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	account, err := socialService.CreateAccount(userID.(string), req)
	if err != nil {
		respondError(c, "Failed to create account", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   account,
	})
}

// ListSocialPosts godoc
// @Summary List an account's posts
// @Tags social
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {array} models.SocialPost
// @Router /social/accounts/{id}/posts [get]
func ListSocialPosts(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	accountID := c.Param("id")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Account ID is required"})
		return
	}

	posts, err := socialService.ListPosts(accountID, userID.(string))
	if err != nil {
		respondError(c, "Failed to retrieve posts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   posts,
	})
}

// CreateSocialPost godoc
// @Summary Generate a social post
// @Description Generate a caption for the topic and save a draft post
// @Tags social
// @Accept json
// @Produce json
// @Param post body dto.CreateSocialPostRequest true "Post Data"
// @Success 201 {object} models.SocialPost
// @Router /social/posts [post]
func CreateSocialPost(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateSocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	post, err := socialService.CreatePost(c.Request.Context(), userID.(string), req)
	if err != nil {
		respondError(c, "Failed to create post", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   post,
	})
}

// MarkSocialPostPosted godoc
// @Summary Confirm a post was published
// @Description Record the external post id reported by the posting driver
// @Tags social
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param confirmation body dto.MarkPostedRequest false "Publish confirmation"
// @Success 200 {object} models.SocialPost
// @Router /social/posts/{id}/posted [post]
func MarkSocialPostPosted(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	postID := c.Param("id")
	if postID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Post ID is required"})
		return
	}

	var req dto.MarkPostedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data: " + err.Error(),
			})
			return
		}
	}

	post, err := socialService.MarkPosted(postID, userID.(string), req.ExternalPostID)
	if err != nil {
		respondError(c, "Failed to mark post as published", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   post,
	})
}
