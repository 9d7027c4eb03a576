// Package export genera los libros XLSX descargables de la pantalla de
// administración: listado de socios y log de actividad.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Barra-api/internal/application/activity"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

// WorkbookGenerator puerto hacia el generador XLSX (lo implementa
// infrastructure/excel con excelize).
type WorkbookGenerator interface {
	UsersWorkbook(ctx context.Context, users []*entity.User) ([]byte, error)
	ActivityLogWorkbook(ctx context.Context, rows []entity.ActivityLogRow, generatedAt time.Time) ([]byte, error)
}

// UseCase exportación administrativa a XLSX.
type UseCase struct {
	userRepo  repository.UserRepository
	activity  *activity.UseCase
	generator WorkbookGenerator
}

// New construye el caso de uso de exportación.
func New(userRepo repository.UserRepository, activityUC *activity.UseCase, generator WorkbookGenerator) *UseCase {
	return &UseCase{userRepo: userRepo, activity: activityUC, generator: generator}
}

// exportMaxUsers tope de filas del libro de socios. Un club tiene cientos de
// socios, no decenas de miles.
const exportMaxUsers = 10000

// ExportUsers genera el libro de socios completo.
func (uc *UseCase) ExportUsers(ctx context.Context) (data []byte, filename string, err error) {
	users, err := uc.userRepo.List("", exportMaxUsers, 0)
	if err != nil {
		return nil, "", fmt.Errorf("export: listar socios: %w", err)
	}
	data, err = uc.generator.UsersWorkbook(ctx, users)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar libro de socios: %w", err)
	}
	filename = fmt.Sprintf("socios-%s.xlsx", time.Now().Format("20060102"))
	return data, filename, nil
}

// ExportActivityLogs genera el libro del log de actividad con los mismos
// filtros que la consulta normal.
func (uc *UseCase) ExportActivityLogs(ctx context.Context, filters dto.ActivityLogFilters) (data []byte, filename string, err error) {
	rows, err := uc.activity.QueryRows(filters)
	if err != nil {
		return nil, "", fmt.Errorf("export: consultar log: %w", err)
	}
	now := time.Now()
	data, err = uc.generator.ActivityLogWorkbook(ctx, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("export: generar libro del log: %w", err)
	}
	filename = fmt.Sprintf("actividad-%s.xlsx", now.Format("20060102"))
	return data, filename, nil
}
