package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/i18n"
)

// Checkout composes the order message for the session's cart and hands
// it to the external messaging channel as a deep link. An empty cart
// short-circuits with [domain.ErrEmptyCart]: a zero-item order message
// is meaningless.
//
// Archiving and the order-placed event are one-way notifications; their
// failures are logged, not returned, so a broker outage never blocks a
// customer from checking out.
func (s *Service) Checkout(
	ctx context.Context, sessionID, locale string,
) (domain.Order, error) {
	const op = "Service.Checkout"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.deps.Carts.View(sessionID)
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	if locale == "" {
		locale = s.deps.DefaultLocale
	}
	loc := i18n.Parse(locale)
	msg := s.composeOrderMessage(loc, cart)

	order := domain.Order{
		SessionID: sessionID,
		Lines:     cart.Items,
		Total:     cart.Total(),
		Locale:    string(loc),
		Message:   msg,
		Recipient: s.deps.Messenger.Recipient(),
		Link:      s.deps.Messenger.OrderLink(msg),
		PlacedAt:  time.Now().UTC(),
	}

	if err := s.deps.Archive.StoreOrder(ctx, order); err != nil {
		log.Error("failed to archive order", "err", err)
	}

	if err := s.deps.OrderProducer.ProduceOrder(ctx, order); err != nil {
		log.Error("failed to produce order event", "err", err)
	}

	return order, nil
}

// composeOrderMessage renders the order as the shop has always sent it:
// a bullet line per item with Spanish field labels under both locales,
// a total line, and a localized greeting and sign-off.
func (s *Service) composeOrderMessage(loc i18n.Locale, cart domain.Cart) string {
	currency := s.deps.Currency

	lines := make([]string, 0, len(cart.Items))
	for _, li := range cart.Items {
		lines = append(lines, fmt.Sprintf(
			"• %s\n  Talla: %s | Cantidad: %d | %s%s",
			loc.TranslateProduct(li.Name),
			li.Size,
			li.Quantity,
			currency,
			li.Subtotal().StringFixed(2),
		))
	}

	var b strings.Builder
	b.WriteString(loc.OrderGreeting())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n\n"))
	b.WriteString("\n\n")
	b.WriteString("💰 TOTAL: " + currency + cart.Total().StringFixed(2))
	b.WriteString("\n\n")
	b.WriteString(loc.OrderQuestion())
	b.WriteString("\n\n")
	b.WriteString(loc.OrderThanks())
	return b.String()
}
