package api

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fixed page size for the expense listing, pages are 1-indexed
const expensePageSize = 10

var monthRegexp = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// monthRange returns the first and last day of a YYYY-MM month so a
// BETWEEN filter covers the whole month inclusive of both endpoints
func monthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

func (a *API) ExpenseList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Page must be a positive integer",
			"requestID": requestID,
		})
		return
	}

	q := a.DB.
		Model(&model.Expense{}).
		Preload("Category").
		Preload("PaymentMode").
		Where("expenses.user_id = ?", userID)

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.
			Joins("JOIN categories ON categories.id = expenses.category_id").
			Where("LOWER(categories.name) LIKE ?", "%"+strings.ToLower(category)+"%")
	}

	if recurringStr := c.Query("recurring"); recurringStr != "" {
		recurring, err := strconv.ParseBool(recurringStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Recurring must be true or false",
				"requestID": requestID,
			})
			return
		}

		q = q.Where("expenses.recurring = ?", recurring)
	}

	if month := c.Query("month"); month != "" {
		if !monthRegexp.MatchString(month) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid month format. Use YYYY-MM",
				"requestID": requestID,
			})
			return
		}

		start, end, err := monthRange(month)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid month format. Use YYYY-MM",
				"requestID": requestID,
			})
			return
		}

		q = q.Where("expenses.date BETWEEN ? AND ?", start, end)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(expenses.note) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	expenses := []model.Expense{}

	err = q.
		Order("expenses.date desc").
		Offset((page - 1) * expensePageSize).
		Limit(expensePageSize).
		Find(&expenses).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list expenses", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, expenses)
}
