package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// LedgerUseCase registra movimientos de saldo vía líneas del ledger.
// Todo cambio de saldo queda atado a una transacción auditable: el saldo
// materializado en users.balance se incrementa con una expresión atómica en la
// misma tx que inserta las líneas.
type LedgerUseCase struct {
	txRunner    TxRunner
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	txReadRepo  repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso del ledger.
func NewLedgerUseCase(
	txRunner TxRunner,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	txReadRepo repository.TransactionRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		userRepo:    userRepo,
		productRepo: productRepo,
		txReadRepo:  txReadRepo,
	}
}

// Checkout convierte el carrito en un lote de transacciones: una línea del
// ledger por producto distinto, con monto -(cantidad × precio). El lote entero
// y la actualización del saldo son una sola transacción de BD.
func (uc *LedgerUseCase) Checkout(ctx context.Context, userID int64, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// Validar productos y resolver precios (lectura, fuera de la tx)
	ids := make([]int64, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}
	found, err := uc.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		productsByID[p.ID] = p
	}

	now := time.Now()
	batchID := uuid.New().String()
	lines := make([]*entity.Transaction, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			return nil, domain.ErrProductNotFound
		}
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if product.IsAdminProduct {
			return nil, domain.ErrAdminProduct
		}
		price, err := resolveUnitPrice(product, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		amount := price.Mul(decimal.NewFromInt(int64(item.Quantity))).Neg()
		total = total.Add(amount)
		lines = append(lines, &entity.Transaction{
			UserID:    userID,
			ProductID: product.ID,
			Amount:    amount,
			Quantity:  item.Quantity,
			UnitPrice: price,
			BatchID:   &batchID,
			CreatedAt: now,
		})
	}

	err = uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, userRepo repository.UserRepository) error {
		for _, line := range lines {
			if err := txRepo.Create(line); err != nil {
				return err
			}
		}
		return userRepo.AdjustBalance(userID, total)
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CheckoutResponse{
		BatchID: batchID,
		Total:   total,
		Balance: updated.Balance,
	}
	for _, line := range lines {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			ID:        line.ID,
			ProductID: line.ProductID,
			Amount:    line.Amount,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			BatchID:   line.BatchID,
			CreatedAt: line.CreatedAt,
		})
	}
	return resp, nil
}

// RecordAdjustment inserta un movimiento manual de saldo contra un producto
// administrativo (depósito, corrección). Amount con signo: positivo acredita.
func (uc *LedgerUseCase) RecordAdjustment(ctx context.Context, in dto.AdjustmentRequest) (*dto.TransactionResponse, error) {
	if in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if !product.IsAdminProduct {
		return nil, domain.ErrInvalidInput
	}

	line := &entity.Transaction{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Amount:    in.Amount,
		Quantity:  1,
		UnitPrice: in.Amount,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(txRepo repository.TransactionRepository, userRepo repository.UserRepository) error {
		if err := txRepo.Create(line); err != nil {
			return err
		}
		return userRepo.AdjustBalance(in.UserID, in.Amount)
	})
	if err != nil {
		return nil, err
	}
	return &dto.TransactionResponse{
		ID:        line.ID,
		ProductID: line.ProductID,
		Amount:    line.Amount,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
		CreatedAt: line.CreatedAt,
	}, nil
}

// History devuelve las líneas del ledger de un socio, más recientes primero.
func (uc *LedgerUseCase) History(userID int64, limit, offset int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := uc.txReadRepo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.TransactionResponse{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Amount:      row.Amount,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			BatchID:     row.BatchID,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

// Reconcile compara el saldo materializado con la suma del ledger, que es la
// fuente autoritativa.
func (uc *LedgerUseCase) Reconcile(ctx context.Context, userID int64) (*dto.ReconcileResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	sum, err := uc.txReadRepo.SumByUser(userID)
	if err != nil {
		return nil, err
	}
	return &dto.ReconcileResponse{
		UserID:     userID,
		Balance:    user.Balance,
		LedgerSum:  sum,
		Consistent: user.Balance.Equal(sum),
	}, nil
}

func resolveUnitPrice(product *entity.Product, override *decimal.Decimal) (decimal.Decimal, error) {
	if product.IsOpenPrice {
		if override == nil || !override.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrOpenPrice
		}
		return *override, nil
	}
	if override != nil {
		if !override.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return *override, nil
	}
	return product.Price, nil
}
