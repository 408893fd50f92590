package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/models"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

// The category set is fixed, the frontend renders its filter buttons from
// this list and posts default to Uncategorized when none is chosen.

// @Summary Get all categories
// @Description Retrieve the fixed list of post categories
// @Tags categories
// @Produce json
// @Success 200 {object} utils.Response
// @Router /categories [get]
func GetAllCategories(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", models.Categories)
}
