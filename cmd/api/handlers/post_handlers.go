package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tvgt-news/cmd/api/services"
	"tvgt-news/internal/logger"
	"tvgt-news/wordpress"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts of the configured category with cursor pagination
// @Tags         posts
// @Param        first  query  int     false  "Page size (default 10)"
// @Param        after  query  string  false  "End cursor of the previous page"
// @Produce      json
// @Success      200  {object}  dto.PostListDTO
// @Failure      500  {object}  object{error=string}
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		first, _ := strconv.Atoi(c.DefaultQuery("first", "10"))
		after := c.Query("after")

		page, err := svc.List(c.Request.Context(), first, after)
		if err != nil {
			// keep upstream details out of the response
			logger.Log.Errorf("list posts failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron obtener las noticias"})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post by slug
// @Description  Get a single post with its full body
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  object{error=string}
// @Router       /noticias/{slug} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, err := svc.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, wordpress.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "noticia no encontrada"})
				return
			}
			logger.Log.Errorf("get post %q failed: %v", slug, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo obtener la noticia"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// FeaturedPostsHandler godoc
// @Summary      Featured posts
// @Description  Latest posts for the homepage strip; may be empty
// @Tags         posts
// @Param        limit  query  int  false  "Number of posts (default 3)"
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /posts/featured [get]
func FeaturedPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
		c.JSON(http.StatusOK, svc.Featured(c.Request.Context(), limit))
	}
}

// ListSlugsHandler godoc
// @Summary      List all post slugs
// @Description  Every addressable article slug, for static route generation; may be empty
// @Tags         posts
// @Produce      json
// @Success      200  {array}  string
// @Router       /posts/slugs [get]
func ListSlugsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slugs := svc.Slugs(c.Request.Context())
		if slugs == nil {
			slugs = []string{}
		}
		c.JSON(http.StatusOK, slugs)
	}
}

// GetCategoryHandler godoc
// @Summary      Get the configured category
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.CategoryDTO
// @Failure      404  {object}  object{error=string}
// @Router       /category [get]
func GetCategoryHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := svc.Category(c.Request.Context())
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "categoría no disponible"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
