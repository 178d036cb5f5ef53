package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// expensePatch enumerates the optional fields of a partial update.
// Only supplied fields are applied, including the date.
type expensePatch struct {
	Amount      *float64          `json:"amount"`
	Date        *model.Date       `json:"date"`
	Note        *string           `json:"note"`
	Recurring   *bool             `json:"recurring"`
	Category    *categoryInput    `json:"category"`
	PaymentMode *paymentModeInput `json:"paymentMode"`
}

func (a *API) ExpenseUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	expenseID := c.Param("id")

	var data expensePatch
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

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

		zap.L().Error("Failed to fetch expense from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if data.Category != nil {
			cat, err := findOrCreateCategory(tx, data.Category)
			if err != nil {
				return err
			}

			expense.CategoryID = cat.ID
		}

		if data.PaymentMode != nil {
			mode, err := findOrCreatePaymentMode(tx, data.PaymentMode)
			if err != nil {
				return err
			}

			expense.PaymentModeID = mode.ID
		}

		if data.Amount != nil {
			expense.Amount = *data.Amount
		}

		if data.Date != nil {
			expense.Date = *data.Date
		}

		if data.Note != nil {
			expense.Note = *data.Note
		}

		if data.Recurring != nil {
			expense.Recurring = *data.Recurring
		}

		return tx.Omit("Category", "PaymentMode").Save(&expense).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.
		Preload("Category").
		Preload("PaymentMode").
		First(&expense, expense.ID).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to reload expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, expense)
}
