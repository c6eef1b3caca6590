package service

import (
	"context"
	"fmt"

	"github.com/urbandrop/storefront/internal/core/domain"
)

// Cart operations go through CartStorage.Update so that concurrent
// calls within one session apply their read-modify-write atomically.

func (s *Service) ViewCart(
	ctx context.Context, sessionID string,
) (domain.Cart, error) {
	const op = "Service.ViewCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.deps.Carts.View(sessionID), nil
}

func (s *Service) AddToCart(
	ctx context.Context, sessionID string, productID int64, size string,
) (domain.Cart, error) {
	const op = "Service.AddToCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.deps.Catalog.ReadProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.deps.Carts.Update(sessionID, func(c domain.Cart) domain.Cart {
		return c.Add(p, size)
	})
	return cart, nil
}

func (s *Service) RemoveFromCart(
	ctx context.Context, sessionID string, productID int64, size string,
) (domain.Cart, error) {
	const op = "Service.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.deps.Carts.Update(sessionID, func(c domain.Cart) domain.Cart {
		return c.Remove(productID, size)
	})
	return cart, nil
}

func (s *Service) SetCartQuantity(
	ctx context.Context, sessionID string, productID int64, size string, quantity int,
) (domain.Cart, error) {
	const op = "Service.SetCartQuantity"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart := s.deps.Carts.Update(sessionID, func(c domain.Cart) domain.Cart {
		return c.SetQuantity(productID, size, quantity)
	})
	return cart, nil
}
