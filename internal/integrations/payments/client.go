package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Client клиент платежного провайдера поверх Stripe PaymentIntents.
// Для остального кода провайдер непрозрачен: авторизация возвращает
// ссылку и секрет, проверка статуса - один из трех исходов.
type Client struct {
	api      *client.API
	currency string
	log      Logger
}

// NewClient создает новый экземпляр платежного клиента
func NewClient(apiKey string, currency string, log Logger) *Client {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &Client{
		api:      api,
		currency: currency,
		log:      log,
	}
}

// Authorize инициирует платеж на указанную сумму (в долларах) и возвращает
// ссылку на платеж вместе с клиентским секретом
func (c *Client) Authorize(ctx context.Context, amount float64) (*Authorization, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(toCents(amount)),
		Currency: stripe.String(c.currency),
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}

	c.log.Info("Payments: authorized intent %s for %.2f %s", intent.ID, amount, c.currency)

	return &Authorization{
		Reference:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Status возвращает обобщенный статус платежа по ссылке
func (c *Client) Status(ctx context.Context, reference string) (State, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}

	intent, err := c.api.PaymentIntents.Get(reference, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.HTTPStatusCode == 404 {
			return "", ErrPaymentNotFound
		}
		return "", fmt.Errorf("%w: get intent %s: %v", ErrInternal, reference, err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatePaid, nil
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation:
		return StatePending, nil
	default:
		return StateFailed, nil
	}
}

// toCents переводит сумму в долларах в центы для провайдера
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
