package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type categoryExpenseRow struct {
	model.Category
	Expense float64 `json:"expense"`
}

// CategoryExpenseReport sums linked expense amounts per category.
// Categories with no expenses are included with a 0 total, hence the
// left outer join.
func (a *API) CategoryExpenseReport(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	rows := []categoryExpenseRow{}

	err := a.DB.
		Model(&model.Category{}).
		Select("categories.*, COALESCE(SUM(expenses.amount), 0) AS expense").
		Joins("LEFT JOIN expenses ON expenses.category_id = categories.id").
		Group("categories.id").
		Scan(&rows).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to build category expense report", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, rows)
}
