package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Barra-api/internal/domain"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// StatementPDFGenerator puerto hacia el generador de PDF (lo implementa
// infrastructure/pdf con Maroto).
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, user *entity.User, rows []repository.TransactionRow, generatedAt time.Time) ([]byte, error)
}

// StatementUseCase genera el estado de cuenta de un socio: saldo actual más su
// historial del ledger, como PDF descargable.
type StatementUseCase struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	generator StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{userRepo: userRepo, txRepo: txRepo, generator: generator}
}

// statementMaxRows tope de líneas del PDF; suficiente para el historial de un
// socio de barra, evita documentos desbordados.
const statementMaxRows = 500

// DownloadStatementPDF carga socio + historial y genera el PDF.
// Retorna (pdfBytes, filename, nil) o domain.ErrUserNotFound.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, userID int64) (pdfBytes []byte, filename string, err error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener socio: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrUserNotFound
	}

	rows, err := uc.txRepo.ListByUser(userID, statementMaxRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("statement: obtener historial: %w", err)
	}

	now := time.Now()
	pdf, err := uc.generator.GenerateStatementPDF(ctx, user, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("statement: generar PDF: %w", err)
	}
	filename = fmt.Sprintf("estado-cuenta-%s-%s.pdf", user.MemberNo, now.Format("20060102"))
	return pdf, filename, nil
}
