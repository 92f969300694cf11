package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/service"
)

type AuthHandler struct {
	userService UserServicer
}

func NewAuthHandler(userService UserServicer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type RegisterParams struct {
	Name    string `binding:"required,min=1,max=100"     json:"name"`
	Email   string `binding:"required,email"             json:"email"`
	Phone   string `binding:"required,e164"              json:"phone"`
	Channel string `binding:"required,oneof=sms email"   json:"channel"`
}

// Register POST RouteGroup + RegisterRoute. Первый шаг регистрации: проверяет уникальность
// контактов и отправляет одноразовый код на выбранный канал. Юзер пока не создается.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.userService.StartRegistration(ctx, service.StartRegistrationArgs{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Channel: domain.OTPChannel(params.Channel),
	})
	if err != nil {
		var dupErr *domain.DuplicateUserError
		if errors.As(err, &dupErr) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this phone or email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type RegisterConfirmParams struct {
	Name       string `binding:"required,min=1,max=100"   json:"name"`
	Email      string `binding:"required,email"           json:"email"`
	Phone      string `binding:"required,e164"            json:"phone"`
	Password   string `binding:"required,min=6,max=255"   json:"password"`
	Channel    string `binding:"required,oneof=sms email" json:"channel"`
	Code       string `binding:"required,len=6,numeric"   json:"code"`
	ReferredBy string `binding:"omitempty,max=10"         json:"referredBy"`
}

type UserResponse struct {
	ID           int64     `json:"ID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	IsActivated  bool      `json:"isActivated"`
	ReferralCode string    `json:"referralCode"`
	BankLinked   bool      `json:"bankLinked"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		IsActivated:  user.IsActivated,
		ReferralCode: user.ReferralCode,
		BankLinked:   user.BankLinked,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// RegisterConfirm POST RouteGroup + RegisterConfirmRoute. Второй шаг регистрации: сверяет
// одноразовый код, создает юзера и аутентифицирует его.
func (h *AuthHandler) RegisterConfirm(c *gin.Context) {
	var params RegisterConfirmParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.ConfirmRegistration(ctx, service.ConfirmRegistrationArgs{
		Name:       params.Name,
		Email:      params.Email,
		Phone:      params.Phone,
		Password:   params.Password,
		Channel:    domain.OTPChannel(params.Channel),
		Code:       params.Code,
		ReferredBy: params.ReferredBy,
	})
	if createErr != nil {
		var dupErr *domain.DuplicateUserError
		switch {
		case errors.Is(createErr, domain.ErrOTPRejected):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("verification code rejected")).
				SetType(gin.ErrorTypePublic)
		case errors.As(createErr, &dupErr):
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this phone or email already exists")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, createErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type LoginParams struct {
	Login    string `binding:"required,min=3,max=100"  json:"login"`
	Password string `binding:"required,min=6,max=255"  json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре телефон-или-email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Login:    params.Login,
		Password: params.Password,
	})

	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Authorization", "Bearer "+token)

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}
