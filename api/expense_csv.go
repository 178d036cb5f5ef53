package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExpenseCSV streams the caller's full expense history as a CSV
// attachment, newest first, with category and payment mode names
// flattened into text columns
func (a *API) ExpenseCSV(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var expenses []model.Expense

	err := a.DB.
		Preload("Category").
		Preload("PaymentMode").
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&expenses).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list expenses for export", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"id", "amount", "date", "note", "recurring", "category", "paymentMode"})

	for _, e := range expenses {
		w.Write([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Date.Format("2006-01-02"),
			e.Note,
			strconv.FormatBool(e.Recurring),
			e.Category.Name,
			e.PaymentMode.Name,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to write CSV", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
