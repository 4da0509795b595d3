package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceResolver returns the authoritative unit price for a cart line.
// Purely a read; safe to call concurrently.
type PriceResolver interface {
	Resolve(productID uuid.UUID, variantID *uuid.UUID) (decimal.Decimal, error)
}

type dbPriceResolver struct {
	db *gorm.DB
}

// NewPriceResolver builds a resolver over the given handle. Checkout
// passes its open transaction so price reads share its snapshot.
func NewPriceResolver(db *gorm.DB) PriceResolver {
	return &dbPriceResolver{db: db}
}

func (r *dbPriceResolver) Resolve(productID uuid.UUID, variantID *uuid.UUID) (decimal.Decimal, error) {
	if variantID != nil {
		// A missing variant means a stale cart; never fall back to the
		// base price silently
		var variant model.PriceVariant
		if err := r.db.First(&variant, "id = ?", *variantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return decimal.Zero, fmt.Errorf("%w: price variant %s", ErrNotFound, *variantID)
			}
			return decimal.Zero, err
		}
		return variant.Price, nil
	}

	var product model.Product
	if err := r.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return decimal.Zero, err
	}
	return product.BasePrice, nil
}

// pricedLine is a cart line with its resolved price snapshot.
type pricedLine struct {
	model.CartLine
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// priceCart resolves every line and accumulates the cart total.
// Line discounts are applied as given; an oversized discount can drive
// a line total negative (see the known-gap test in checkout tests).
func priceCart(resolver PriceResolver, lines []model.CartLine) ([]pricedLine, decimal.Decimal, error) {
	priced := make([]pricedLine, 0, len(lines))
	totalAmount := decimal.Zero

	for _, line := range lines {
		unitPrice, err := resolver.Resolve(line.ProductID, line.PriceVariantID)
		if err != nil {
			return nil, decimal.Zero, err
		}

		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))).Sub(line.DiscountAmount)
		totalAmount = totalAmount.Add(lineTotal)

		priced = append(priced, pricedLine{
			CartLine:   line,
			UnitPrice:  unitPrice,
			TotalPrice: lineTotal,
		})
	}

	return priced, totalAmount, nil
}
