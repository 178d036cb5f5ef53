package api

import (
	"net/http"
	"strconv"
	"strings"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IncomeList returns the caller's incomes, newest first. There is no
// page parameter here, the optional top cap takes its place.
func (a *API) IncomeList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	q := a.DB.
		Model(&model.Income{}).
		Where("user_id = ?", userID)

	if recurringStr := c.Query("recurring"); recurringStr != "" {
		recurring, err := strconv.ParseBool(recurringStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Recurring must be true or false",
				"requestID": requestID,
			})
			return
		}

		q = q.Where("is_recurring = ?", recurring)
	}

	if source := strings.TrimSpace(c.Query("source")); source != "" {
		q = q.Where("LOWER(source) LIKE ?", "%"+strings.ToLower(source)+"%")
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

		q = q.Where("date BETWEEN ? AND ?", start, end)
	}

	q = q.Order("date desc")

	if topStr := c.Query("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Top must be a positive integer",
				"requestID": requestID,
			})
			return
		}

		q = q.Limit(top)
	}

	incomes := []model.Income{}

	if err := q.Find(&incomes).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list incomes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, incomes)
}
