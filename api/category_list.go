package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CategoryList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	categories := []model.Category{}

	if err := a.DB.Find(&categories).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list categories", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CategoryBudgets returns the same rows as CategoryList. The frontend
// reads budgets from a dedicated path.
func (a *API) CategoryBudgets(c *gin.Context) {
	a.CategoryList(c)
}
