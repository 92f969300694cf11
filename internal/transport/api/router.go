package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/azuraxkenya/megaon/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup           = "/api"
	RegisterRoute        = "/user/register"
	RegisterConfirmRoute = "/user/register/confirm"
	LoginRoute           = "/user/login"
	EarningsRoute        = "/user/earnings"
	TransactionsRoute    = "/user/transactions"
	BonusRoute           = "/user/bonus"
	BalanceWithdrawRoute = "/user/balance/withdraw"
	WithdrawalsRoute     = "/user/withdrawals"
	BankRoute            = "/user/bank"
	ActivationRoute      = "/user/activation"
	ActivationConfirm    = "/user/activation/confirm"
	ActivationReport     = "/user/activation/report"
	ActivationRetry      = "/user/activation/retry"

	AdminRouteGroup        = "/admin"
	AdminConfigRoute       = "/config"
	AdminUsersRoute        = "/users"
	AdminTransactionsRoute = "/transactions"
	AdminWithdrawalsRoute  = "/withdrawals/:id"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	LedgerService   LedgerServicer
	ActivationMgr   ActivationManager
	PlatformService PlatformServicer
	JWTSecretKey    []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	ledgerHandler := NewLedgerHandler(args.LedgerService, args.UserService)
	activationHandler := NewActivationHandler(args.ActivationMgr)
	adminHandler := NewAdminHandler(args.PlatformService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(RegisterConfirmRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.RegisterConfirm)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(EarningsRoute, ledgerHandler.Earnings)
	api.GET(TransactionsRoute, ledgerHandler.Transactions)
	api.POST(BonusRoute, ledgerHandler.ClaimBonus)
	api.POST(BalanceWithdrawRoute, ledgerHandler.Withdraw)
	api.GET(WithdrawalsRoute, ledgerHandler.Withdrawals)
	api.PUT(BankRoute, ledgerHandler.LinkBank)

	api.POST(ActivationRoute, activationHandler.Start)
	api.GET(ActivationRoute, activationHandler.Status)
	api.DELETE(ActivationRoute, activationHandler.Cancel)
	api.POST(ActivationConfirm, activationHandler.Confirm)
	api.POST(ActivationReport, activationHandler.ReportMissing)
	api.POST(ActivationRetry, activationHandler.Retry)

	admin := api.Group(AdminRouteGroup)
	admin.Use(middlewares.AdminRequired())
	admin.GET(AdminConfigRoute, adminHandler.GetConfig)
	admin.PUT(AdminConfigRoute, adminHandler.UpdateConfig)
	admin.GET(AdminUsersRoute, adminHandler.Users)
	admin.GET(AdminTransactionsRoute, adminHandler.Transactions)
	admin.POST(AdminWithdrawalsRoute, adminHandler.ReviewWithdrawal)
	return r
}
