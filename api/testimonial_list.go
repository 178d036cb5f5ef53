package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) TestimonialList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	testimonials := []model.Testimonial{}

	if err := a.DB.Find(&testimonials).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list testimonials", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, testimonials)
}
