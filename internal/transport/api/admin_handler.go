package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
)

const defaultTransactionsLimit uint = 100

type AdminHandler struct {
	svs PlatformServicer
}

func NewAdminHandler(svs PlatformServicer) *AdminHandler {
	return &AdminHandler{
		svs: svs,
	}
}

type ConfigResponse struct {
	ActivationFee     float64 `json:"activationFee"`
	ReferralBonus     float64 `json:"referralBonus"`
	MinWithdrawal     float64 `json:"minWithdrawal"`
	BankName          string  `json:"bankName"`
	BankAccountNumber string  `json:"bankAccountNumber"`
	BankAccountName   string  `json:"bankAccountName"`
}

func newConfigResponse(conf *domain.PlatformConfig) ConfigResponse {
	return ConfigResponse{
		ActivationFee:     conf.ActivationFee.InexactFloat64(),
		ReferralBonus:     conf.ReferralBonus.InexactFloat64(),
		MinWithdrawal:     conf.MinWithdrawal.InexactFloat64(),
		BankName:          conf.BankName,
		BankAccountNumber: conf.BankAccountNumber,
		BankAccountName:   conf.BankAccountName,
	}
}

// GetConfig GET RouteGroup + AdminRouteGroup + AdminConfigRoute.
func (h *AdminHandler) GetConfig(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	conf, err := h.svs.GetConfig(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newConfigResponse(conf))
}

type ConfigUpdateParams struct {
	ActivationFee     decimal.Decimal `json:"activationFee"`
	ReferralBonus     decimal.Decimal `json:"referralBonus"`
	MinWithdrawal     decimal.Decimal `json:"minWithdrawal"`
	BankName          string          `binding:"required,min=2,max=100" json:"bankName"`
	BankAccountNumber string          `binding:"required,min=4,max=34"  json:"bankAccountNumber"`
	BankAccountName   string          `binding:"required,min=2,max=100" json:"bankAccountName"`
}

// UpdateConfig PUT RouteGroup + AdminRouteGroup + AdminConfigRoute. Перезаписывает настройки
// платформы целиком, последняя запись выигрывает.
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var params ConfigUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !params.ActivationFee.IsPositive() || !params.ReferralBonus.IsPositive() || !params.MinWithdrawal.IsPositive() {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("amounts must be positive")).
			SetType(gin.ErrorTypePublic)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	conf, err := h.svs.UpdateConfig(reqCtx, repoargs.ConfigUpdate{
		ActivationFee:     params.ActivationFee,
		ReferralBonus:     params.ReferralBonus,
		MinWithdrawal:     params.MinWithdrawal,
		BankName:          params.BankName,
		BankAccountNumber: params.BankAccountNumber,
		BankAccountName:   params.BankAccountName,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newConfigResponse(conf))
}

type AdminUserResponseItem struct {
	ID            int64  `json:"ID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	IsActivated   bool   `json:"isActivated"`
	ReferralCode  string `json:"referralCode"`
	ReferredBy    string `json:"referredBy,omitempty"`
	BankLinked    bool   `json:"bankLinked"`
	LastBonusDate string `json:"lastBonusDate,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Users GET RouteGroup + AdminRouteGroup + AdminUsersRoute.
func (h *AdminHandler) Users(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	users, err := h.svs.ListUsers(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AdminUserResponseItem, len(users))
	for i, user := range users {
		response[i] = AdminUserResponseItem{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			Phone:         user.Phone,
			IsActivated:   user.IsActivated,
			ReferralCode:  user.ReferralCode,
			ReferredBy:    user.ReferredBy,
			BankLinked:    user.BankLinked,
			LastBonusDate: user.LastBonusDate,
			CreatedAt:     user.CreatedAt.Format(time.RFC3339),
		}
	}

	c.JSON(http.StatusOK, response)
}

type AdminTransactionResponseItem struct {
	TransactionResponseItem
	UserName string `json:"userName"`
}

// Transactions GET RouteGroup + AdminRouteGroup + AdminTransactionsRoute. Последние операции
// всех юзеров, лимит передается параметром limit.
func (h *AdminHandler) Transactions(c *gin.Context) {
	limit := defaultTransactionsLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, parseErr := strconv.ParseUint(limitStr, 10, 32)
		if parseErr != nil {
			_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
			return
		}
		limit = uint(parsed)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.ListTransactions(reqCtx, limit)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AdminTransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = AdminTransactionResponseItem{
			TransactionResponseItem: TransactionResponseItem{
				Code:        transaction.Code,
				Kind:        string(transaction.Kind),
				Amount:      transaction.Amount.InexactFloat64(),
				Status:      string(transaction.Status),
				Description: transaction.Description,
				CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
			},
			UserName: transaction.UserName,
		}
	}

	c.JSON(http.StatusOK, response)
}

type ReviewWithdrawalParams struct {
	Approve bool `json:"approve"`
}

// ReviewWithdrawal POST RouteGroup + AdminRouteGroup + AdminWithdrawalsRoute. Завершает
// pending заявку на вывод: approve true переводит в completed, false - в failed.
func (h *AdminHandler) ReviewWithdrawal(c *gin.Context) {
	id, idErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if idErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, idErr).SetType(gin.ErrorTypeBind)
		return
	}

	var params ReviewWithdrawalParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.svs.ReviewWithdrawal(reqCtx, id, params.Approve)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionFinalized) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("withdrawal already reviewed")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":   transaction.Code,
		"status": string(transaction.Status),
	})
}
