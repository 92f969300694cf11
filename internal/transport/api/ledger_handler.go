package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/service"
)

type LedgerHandler struct {
	svs         LedgerServicer
	userService UserServicer
}

func NewLedgerHandler(svs LedgerServicer, userService UserServicer) *LedgerHandler {
	return &LedgerHandler{
		svs:         svs,
		userService: userService,
	}
}

type EarningsResponse struct {
	TotalEarned      float64 `json:"totalEarned"`
	ReferralEarnings float64 `json:"referralEarnings"`
	TotalWithdrawn   float64 `json:"totalWithdrawn"`
	PendingBalance   float64 `json:"pendingBalance"`
}

// Earnings GET RouteGroup + EarningsRoute. Возвращает агрегаты счета юзера.
func (h *LedgerHandler) Earnings(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	statement, err := h.svs.Statement(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &EarningsResponse{
		TotalEarned:      statement.Earnings.TotalEarned.InexactFloat64(),
		ReferralEarnings: statement.Earnings.ReferralEarnings.InexactFloat64(),
		TotalWithdrawn:   statement.Earnings.TotalWithdrawn.InexactFloat64(),
		PendingBalance:   statement.Earnings.PendingBalance.InexactFloat64(),
	})
}

type TransactionResponseItem struct {
	Code        string  `json:"code"`
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

func newTransactionResponse(transactions []domain.Transaction) []TransactionResponseItem {
	response := make([]TransactionResponseItem, len(transactions))
	for i, transaction := range transactions {
		response[i] = TransactionResponseItem{
			Code:        transaction.Code,
			Kind:        string(transaction.Kind),
			Amount:      transaction.Amount.InexactFloat64(),
			Status:      string(transaction.Status),
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt.Format(time.RFC3339),
		}
	}
	return response
}

// Transactions GET RouteGroup + TransactionsRoute. Журнал операций юзера, новые сверху.
func (h *LedgerHandler) Transactions(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	statement, err := h.svs.Statement(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(statement.Transactions))
}

// ClaimBonus POST RouteGroup + BonusRoute. Начисляет ежедневный бонус. Повторный запрос
// в тот же календарный день возвращает 409.
func (h *LedgerHandler) ClaimBonus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	today := time.Now().Format(time.DateOnly)
	transaction, err := h.svs.ClaimDailyBonus(reqCtx, currentUserID, today)
	if err != nil {
		if errors.Is(err, domain.ErrBonusAlreadyClaimed) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("bonus already claimed today")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":   transaction.Code,
		"amount": transaction.Amount.InexactFloat64(),
	})
}

type WithdrawParams struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `binding:"required,min=1,max=100" json:"method"`
}

// Withdraw POST RouteGroup + BalanceWithdrawRoute. Инициирует вывод средств. Сумма ниже
// минимальной дает 422, недостаточный баланс - 402. Ни одна из проверок ничего не мутирует.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, err := h.svs.Withdraw(reqCtx, currentUserID, params.Amount, params.Method)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBelowMinWithdrawal):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("amount below minimum withdrawal")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":   transaction.Code,
		"status": string(transaction.Status),
	})
}

// Withdrawals GET RouteGroup + WithdrawalsRoute. История заявок на вывод средств.
func (h *LedgerHandler) Withdrawals(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.svs.Withdrawals(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(transactions))
}

type LinkBankParams struct {
	BankName      string `binding:"required,min=2,max=100"  json:"bankName"`
	AccountNumber string `binding:"required,min=4,max=34"   json:"accountNumber"`
	AccountName   string `binding:"required,min=2,max=100"  json:"accountName"`
}

// LinkBank PUT RouteGroup + BankRoute. Привязывает банковские реквизиты для вывода средств.
func (h *LedgerHandler) LinkBank(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params LinkBankParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.userService.LinkBank(reqCtx, service.LinkBankArgs{
		UserID:        currentUserID,
		BankName:      params.BankName,
		AccountNumber: params.AccountNumber,
		AccountName:   params.AccountName,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}
