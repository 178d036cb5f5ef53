package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type incomeBody struct {
	Amount      float64    `json:"amount"`
	Date        model.Date `json:"date"`
	Source      string     `json:"source"`
	IsRecurring bool       `json:"is_recurring"`
}

func (a *API) IncomeCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data incomeBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Date.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Date field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Source == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Source field can't be empty",
			"requestID": requestID,
		})
		return
	}

	income := model.Income{
		Amount:      data.Amount,
		Date:        data.Date,
		Source:      data.Source,
		IsRecurring: data.IsRecurring,
		UserID:      userID,
	}

	if err := a.DB.Create(&income).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create income", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, income)
}
