package activation

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/transport/daraja"
)

type Client interface {
	InitiateStkPush(
		ctx context.Context,
		phone string,
		amount decimal.Decimal,
		reference string,
	) (*daraja.PushResponse, error)
	QueryStatus(ctx context.Context, checkoutID string) (*daraja.StatusResponse, error)
}

type Servicer interface {
	User(ctx context.Context, id int64) (*domain.User, error)
	Config(ctx context.Context) (*domain.PlatformConfig, error)
	FinalizeActivation(ctx context.Context, userID int64) error
}
