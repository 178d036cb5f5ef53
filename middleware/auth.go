package middleware

import (
	"net/http"
	"strings"

	"budgetbuddy/finance-api/model"
	"budgetbuddy/finance-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware validates the bearer token, loads the user it is
// bound to and requires a verified account. Expired and malformed
// tokens get the same response so callers can't tell them apart.
func NewAuthMiddleware(d *gorm.DB, tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Could not validate credentials",
				"requestID": requestID,
			})
			return
		}

		username, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Could not validate credentials",
				"requestID": requestID,
			})
			return
		}

		var user model.User
		err = d.Where("username = ?", username).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "Could not validate credentials",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Please verify your account first",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
