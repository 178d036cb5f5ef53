package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExpenseDelete removes an expense scoped to (id, user). A row owned
// by someone else reads the same as a missing one.
func (a *API) ExpenseDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	expenseID := c.Param("id")

	var expense model.Expense

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, expenseID).
		First(&expense).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Expense not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if expense exists", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Delete(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Expense deleted",
	})
}
