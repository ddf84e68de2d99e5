package payment

import (
	"meal-planner/domain"
	"meal-planner/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// Gateway requests a hosted payment page for an order. Checkout records
	// the returned token alongside the payment row; settling the payment is
	// outside this system.
	Gateway interface {
		CreateTransaction(orderRef string, grossAmount int64) (domain.PaymentToken, error)
	}

	midtransGateway struct {
		client snap.Client
	}
)

func NewMidtransGateway() Gateway {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	client := snap.Client{}
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return &midtransGateway{client: client}
}

func (g *midtransGateway) CreateTransaction(orderRef string, grossAmount int64) (domain.PaymentToken, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: grossAmount,
		},
	}

	res, err := g.client.CreateTransaction(req)
	if err != nil {
		return domain.PaymentToken{}, err
	}
	return domain.PaymentToken{
		Token:       res.Token,
		RedirectURL: res.RedirectURL,
	}, nil
}
