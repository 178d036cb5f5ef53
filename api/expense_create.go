package api

import (
	"errors"
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type categoryInput struct {
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Budget float64 `json:"budget"`
}

type paymentModeInput struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type expenseBody struct {
	Amount      float64           `json:"amount"`
	Date        model.Date        `json:"date"`
	Note        string            `json:"note"`
	Recurring   bool              `json:"recurring"`
	Category    *categoryInput    `json:"category"`
	PaymentMode *paymentModeInput `json:"paymentMode"`
}

// findOrCreateCategory looks a category up by its (name, icon, color)
// triple and inserts it when no row matches. An existing match is
// reused as-is, never updated in place. The check-then-insert is
// best-effort, concurrent identical requests may insert duplicates.
func findOrCreateCategory(tx *gorm.DB, in *categoryInput) (*model.Category, error) {
	var cat model.Category

	err := tx.
		Where("name = ? AND icon = ? AND color = ?", in.Name, in.Icon, in.Color).
		First(&cat).
		Error
	if err == nil {
		return &cat, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cat = model.Category{
		Name:   in.Name,
		Icon:   in.Icon,
		Color:  in.Color,
		Budget: in.Budget,
	}

	return &cat, tx.Create(&cat).Error
}

func findOrCreatePaymentMode(tx *gorm.DB, in *paymentModeInput) (*model.PaymentMode, error) {
	var mode model.PaymentMode

	err := tx.
		Where("name = ? AND icon = ? AND color = ?", in.Name, in.Icon, in.Color).
		First(&mode).
		Error
	if err == nil {
		return &mode, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mode = model.PaymentMode{
		Name:  in.Name,
		Icon:  in.Icon,
		Color: in.Color,
	}

	return &mode, tx.Create(&mode).Error
}

func (a *API) ExpenseCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data expenseBody
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

	if data.Category == nil || data.PaymentMode == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Category and payment mode are required",
			"requestID": requestID,
		})
		return
	}

	var expense model.Expense

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		cat, err := findOrCreateCategory(tx, data.Category)
		if err != nil {
			return err
		}

		mode, err := findOrCreatePaymentMode(tx, data.PaymentMode)
		if err != nil {
			return err
		}

		expense = model.Expense{
			Amount:        data.Amount,
			Date:          data.Date,
			Note:          data.Note,
			Recurring:     data.Recurring,
			CategoryID:    cat.ID,
			PaymentModeID: mode.ID,
			UserID:        userID,
		}

		if err := tx.Omit("Category", "PaymentMode").Create(&expense).Error; err != nil {
			return err
		}

		expense.Category = *cat
		expense.PaymentMode = *mode
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create expense", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, expense)
}
