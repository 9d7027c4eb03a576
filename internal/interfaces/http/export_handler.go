package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Barra-api/internal/application/auth"
	"github.com/jhoicas/Barra-api/internal/application/dto"
	"github.com/jhoicas/Barra-api/internal/application/export"
	"github.com/jhoicas/Barra-api/internal/application/report"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// ExportHandler maneja las descargas: libros XLSX administrativos y el estado
// de cuenta PDF de un socio.
type ExportHandler struct {
	exportUC    *export.UseCase
	statementUC *report.StatementUseCase
	log         *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(exportUC *export.UseCase, statementUC *report.StatementUseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{exportUC: exportUC, statementUC: statementUC, log: log}
}

func sendAttachment(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// denied traduce un fallo (de autorización o de generación) al envelope estándar.
func denied(c *fiber.Ctx, log *logger.Logger, err error) error {
	code, title, description := auth.Describe(err)
	if code == auth.CodeUnexpected && log != nil {
		log.Error().Err(err).Msg("error inesperado en descarga")
	}
	return c.Status(statusFor(code)).JSON(auth.Result[struct{}]{
		Success: false,
		Error:   &auth.ResultError{Code: code, Title: title, Description: description},
	})
}

// ExportUsers godoc
// @Summary      Descargar el libro XLSX de socios (solo admin)
// @Tags         exports
// @Security     Cookie
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/exports/users [get]
func (h *ExportHandler) ExportUsers(c *fiber.Ctx) error {
	if err := auth.Authorize(GetCurrentUser(c), auth.Requirement{AdminOnly: true}); err != nil {
		return denied(c, h.log, err)
	}
	data, filename, err := h.exportUC.ExportUsers(c.Context())
	if err != nil {
		return denied(c, h.log, err)
	}
	return sendAttachment(c, data, filename, contentTypeXLSX)
}

// ExportActivityLogs godoc
// @Summary      Descargar el log de actividad filtrado como XLSX (solo admin)
// @Tags         exports
// @Security     Cookie
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "Desde"
// @Param        end_date    query  string  false  "Hasta"
// @Param        member_no   query  string  false  "Filtra por socio"
// @Success      200  {file}  binary
// @Router       /api/exports/activity-logs [get]
func (h *ExportHandler) ExportActivityLogs(c *fiber.Ctx) error {
	if err := auth.Authorize(GetCurrentUser(c), auth.Requirement{AdminOnly: true}); err != nil {
		return denied(c, h.log, err)
	}
	var in dto.ActivityLogFilters
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, filename, err := h.exportUC.ExportActivityLogs(c.Context(), in)
	if err != nil {
		return denied(c, h.log, err)
	}
	return sendAttachment(c, data, filename, contentTypeXLSX)
}

// Statement godoc
// @Summary      Descargar el estado de cuenta PDF (admin, o el propio socio)
// @Tags         exports
// @Security     Cookie
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del socio"
// @Success      200  {file}  binary
// @Router       /api/users/{id}/statement [get]
func (h *ExportHandler) Statement(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := auth.Authorize(GetCurrentUser(c), auth.Requirement{AdminOnly: true, AllowSelf: true, SelfUserID: id}); err != nil {
		return denied(c, h.log, err)
	}
	data, filename, err := h.statementUC.DownloadStatementPDF(c.Context(), id)
	if err != nil {
		return denied(c, h.log, err)
	}
	return sendAttachment(c, data, filename, contentTypePDF)
}
