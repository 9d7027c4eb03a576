// Package excel genera los libros XLSX de exportación administrativa
// (socios y log de actividad) usando excelize.
package excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
)

// Exporter implementa export.WorkbookGenerator.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

const dateFormat = "02/01/2006 15:04"

// UsersWorkbook genera el libro de socios: una fila por socio con su saldo.
func (e *Exporter) UsersWorkbook(_ context.Context, users []*entity.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Socios"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"N° socio", "Nombre", "Permiso", "Saldo", "Contraseña fijada", "Creado"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, u := range users {
		rowNum := i + 2
		passwordSet := "No"
		if u.Password != "" {
			passwordSet = "Sí"
		}
		cells := []any{
			u.MemberNo, u.Name, u.Permission,
			u.Balance.InexactFloat64(), passwordSet,
			u.CreatedAt.Format(dateFormat),
		}
		if err := writeRow(f, sheet, rowNum, cells); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "F", 18); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	return fileBytes(f)
}

// ActivityLogWorkbook genera el libro del log de actividad filtrado.
func (e *Exporter) ActivityLogWorkbook(_ context.Context, rows []entity.ActivityLogRow, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Actividad"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Fecha", "N° socio", "Socio", "Acción", "Detalles"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, r := range rows {
		rowNum := i + 2
		cells := []any{
			r.CreatedAt.Format(dateFormat),
			r.MemberNo, r.UserName, r.Action, string(r.Details),
		}
		if err := writeRow(f, sheet, rowNum, cells); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, "A", "D", 18); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}
	if err := f.SetColWidth(sheet, "E", "E", 50); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	return fileBytes(f)
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: crear estilo: %w", err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: escribir cabecera: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("excel: estilo de cabecera: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: escribir celda: %w", err)
		}
	}
	return nil
}

func fileBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
