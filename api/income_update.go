package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// incomePatch enumerates the optional fields of a partial update
type incomePatch struct {
	Amount      *float64    `json:"amount"`
	Date        *model.Date `json:"date"`
	Source      *string     `json:"source"`
	IsRecurring *bool       `json:"is_recurring"`
}

func (a *API) IncomeUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	incomeID := c.Param("id")

	var data incomePatch
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var income model.Income

	err := a.DB.
		Where("user_id = ? AND id = ?", userID, incomeID).
		First(&income).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Income not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch income from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Amount != nil {
		income.Amount = *data.Amount
	}

	if data.Date != nil {
		income.Date = *data.Date
	}

	if data.Source != nil {
		income.Source = *data.Source
	}

	if data.IsRecurring != nil {
		income.IsRecurring = *data.IsRecurring
	}

	if err := a.DB.Save(&income).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update income", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, income)
}
