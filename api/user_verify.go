package api

import (
	"net/http"

	"budgetbuddy/finance-api/model"
	"budgetbuddy/finance-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type verifyBody struct {
	PhoneNumber      string `json:"phone_number"`
	VerificationCode string `json:"verification_code"`
}

func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.PhoneValidator(data.PhoneNumber); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.CodeValidator(data.VerificationCode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("phone_number = ?", data.PhoneNumber).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user by phone number", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The stored code is cleared on success, so a replayed code hits
	// the nil branch and fails
	if user.VerificationCode == nil || *user.VerificationCode != data.VerificationCode {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid verification code",
			"requestID": requestID,
		})
		return
	}

	err = a.DB.Model(&user).
		Updates(map[string]any{
			"is_verified":       true,
			"verification_code": nil,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark user as verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := a.Tokens.Issue(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "User verified successfully",
		"access_token": token,
		"token_type":   "bearer",
	})
}
