package service

import (
	"errors"
	"fmt"
	"time"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentTolerance is the allowed gap between the payment sum and the
// final amount (one cent)
var paymentTolerance = decimal.New(1, -2)

// txNumberAttempts bounds the collision-retry loop for the generated
// transaction number; the unique index is the authoritative guard
const txNumberAttempts = 3

type CheckoutService interface {
	CommitTransaction(req *model.CreateTransactionRequest) (*model.Transaction, error)
}

type checkoutService struct {
	productRepo repository.ProductRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewCheckoutService(productRepo repository.ProductRepository, db *gorm.DB, hub *ws.Hub) CheckoutService {
	return &checkoutService{
		productRepo: productRepo,
		db:          db,
		wsHub:       hub,
	}
}

// CommitTransaction turns a cart plus payments into a durable sale:
// prices every line, checks the payment sum against the final amount,
// then persists the transaction with its items and payments while
// decrementing stock, all inside one database transaction.
func (s *checkoutService) CommitTransaction(req *model.CreateTransactionRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrInvalidInput, firstErr.FailedField, firstErr.Tag)
	}

	var committed *model.Transaction
	var err error
	for attempt := 0; attempt < txNumberAttempts; attempt++ {
		committed, err = s.commitOnce(req)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		// Transaction number collided; regenerate and rerun the whole
		// unit of work (Postgres aborts the server-side tx on a unique
		// violation, so a savepoint retry is not an option)
	}
	if err != nil {
		return nil, err
	}

	s.broadcastSale(committed)
	return committed, nil
}

func (s *checkoutService) commitOnce(req *model.CreateTransactionRequest) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Price reads run on the open transaction so checkout never
		// sees prices from a different snapshot than its writes
		resolver := NewPriceResolver(tx)
		priced, totalAmount, err := priceCart(resolver, req.Items)
		if err != nil {
			return err
		}

		finalAmount := totalAmount.Add(req.TaxAmount).Sub(req.DiscountAmount)

		paid := sumPayments(req.Payments)
		if paid.Sub(finalAmount).Abs().GreaterThan(paymentTolerance) {
			return fmt.Errorf("%w: paid %s, due %s", ErrPaymentMismatch, paid, finalAmount)
		}

		txn := &model.Transaction{
			TransactionNumber: newTransactionNumber(),
			TotalAmount:       totalAmount,
			TaxAmount:         req.TaxAmount,
			DiscountAmount:    req.DiscountAmount,
			FinalAmount:       finalAmount,
			PaymentMethod:     derivePaymentMethod(req.Payments),
			PaymentStatus:     model.StatusCompleted,
			TransactionDate:   time.Now(),
		}

		for _, line := range priced {
			txn.Items = append(txn.Items, model.TransactionItem{
				ProductID:      line.ProductID,
				PriceVariantID: line.PriceVariantID,
				Quantity:       line.Quantity,
				UnitPrice:      line.UnitPrice,
				TotalPrice:     line.TotalPrice,
				DiscountAmount: line.DiscountAmount,
			})
		}
		for _, payment := range req.Payments {
			txn.Payments = append(txn.Payments, model.PaymentRecord{
				PaymentMethod:   payment.PaymentMethod,
				Amount:          payment.Amount,
				ReferenceNumber: payment.ReferenceNumber,
			})
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		// Check-then-decrement stock under a row lock so concurrent
		// commits on the same product serialize
		for _, line := range priced {
			product, err := s.productRepo.LockByID(tx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %s", ErrNotFound, line.ProductID)
				}
				return err
			}

			newStock, err := sellStock(product, line.Quantity)
			if err != nil {
				return err
			}

			if err := s.productRepo.UpdateStock(tx, product.ID, newStock); err != nil {
				return err
			}
		}

		result = txn
		return nil
	})

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *checkoutService) broadcastSale(txn *model.Transaction) {
	go s.wsHub.BroadcastJSON(ws.SaleEvent{
		Type:   "sale",
		Action: "transaction_committed",
		Transaction: ws.SaleDetails{
			ID:                txn.ID,
			TransactionNumber: txn.TransactionNumber,
			FinalAmount:       txn.FinalAmount,
			PaymentMethod:     string(txn.PaymentMethod),
			ItemCount:         len(txn.Items),
		},
	})
}

// sellStock returns the stock left after selling quantity units of the
// locked product, or ErrInsufficientStock when the sale would drive
// stock negative. The caller owns the write.
func sellStock(product *model.Product, quantity int) (int, error) {
	if product.StockQuantity < quantity {
		return 0, fmt.Errorf("%w: product '%s' has %d, cart needs %d",
			ErrInsufficientStock, product.Name, product.StockQuantity, quantity)
	}
	return product.StockQuantity - quantity, nil
}

func sumPayments(payments []model.PaymentEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, payment := range payments {
		sum = sum.Add(payment.Amount)
	}
	return sum
}

// derivePaymentMethod tags the transaction once at commit time: the
// sole entry's method, or "mixed" for more than one entry.
func derivePaymentMethod(payments []model.PaymentEntry) model.PaymentMethod {
	if len(payments) > 1 {
		return model.PaymentMixed
	}
	return payments[0].PaymentMethod
}

func newTransactionNumber() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), suffix)
}
