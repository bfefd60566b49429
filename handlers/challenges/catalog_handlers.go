package challenges

import (
	"net/http"
	"time"

	"wavectf/database"
	"wavectf/models"
	"wavectf/utils/response"

	"github.com/gin-gonic/gin"
)

const catalogCacheTTL = 5 * time.Minute

// [GET] GetCategories
// @Summary List challenge categories
// @Description List the distinct categories of active challenges
// @Tags Challenges
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /challenges/categories [get]
// @Security Bearer
func GetCategories(c *gin.Context) {
	listDistinct(c, "category", "challenge_categories")
}

// [GET] GetDifficulties
// @Summary List challenge difficulties
// @Description List the distinct difficulties of active challenges
// @Tags Challenges
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /challenges/difficulties [get]
// @Security Bearer
func GetDifficulties(c *gin.Context) {
	listDistinct(c, "difficulty", "challenge_difficulties")
}

// listDistinct serves a distinct-column listing through the cache
func listDistinct(c *gin.Context, column, cacheKey string) {
	ctx := c.Request.Context()

	var values []string
	if found, err := database.GetFromCache(ctx, cacheKey, &values); err == nil && found {
		c.JSON(http.StatusOK, values)
		return
	}

	if err := database.DB.Model(&models.Challenge{}).
		Where("is_active = ?", true).
		Distinct(column).
		Order(column+" asc").
		Pluck(column, &values).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchChallenges)
		return
	}

	database.SetToCache(ctx, cacheKey, values, catalogCacheTTL)
	c.JSON(http.StatusOK, values)
}
