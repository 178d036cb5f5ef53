package api

import (
	"errors"
	"fmt"
	"net/http"

	"budgetbuddy/finance-api/model"
	"budgetbuddy/finance-api/service"
	"budgetbuddy/finance-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type signupBody struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

var errDispatchFailed = errors.New("verification code dispatch failed")

func (a *API) UserSignup(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data signupBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	for _, err := range []error{
		validators.EmailValidator(data.Email),
		validators.UsernameValidator(data.Username),
		validators.PhoneValidator(data.PhoneNumber),
		validators.PasswordValidator(data.Password),
	} {
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	// Duplicate checks run in a fixed order so the first match wins
	checks := []struct {
		column string
		value  string
		reason string
	}{
		{"email", data.Email, "Email already registered"},
		{"username", data.Username, "Username already taken"},
		{"phone_number", data.PhoneNumber, "Phone number already registered"},
	}

	for _, check := range checks {
		var found bool

		r := a.DB.Model(model.User{}).
			Select("count(*) > 0").
			Where(fmt.Sprintf("%s = ?", check.column), check.value).
			Find(&found)
		if r.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user is registered", zap.Error(r.Error), zap.String("requestID", requestID))
			return
		}

		if found {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     check.reason,
				"requestID": requestID,
			})
			return
		}
	}

	hash, err := a.Argon.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	code := service.GenerateCode()

	// The user row and the SMS dispatch succeed or fail together. A
	// failed dispatch rolls the row back so signup can be retried.
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			Email:            data.Email,
			Username:         data.Username,
			PhoneNumber:      data.PhoneNumber,
			HashedPassword:   hash,
			IsActive:         true,
			VerificationCode: &code,
		}

		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		sid, err := a.Dispatch.Dispatch(c.Request.Context(), data.PhoneNumber, code)
		if err != nil {
			return fmt.Errorf("%w, %w", errDispatchFailed, err)
		}

		zap.L().Debug("Verification code dispatched", zap.String("sid", sid), zap.String("requestID", requestID))
		return nil
	})
	if err != nil {
		if errors.Is(err, errDispatchFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to send verification code",
				"requestID": requestID,
			})

			zap.L().Error("Failed to send verification code", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent to your phone number",
	})
}
