package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/recuento-api/internal/application/dto"
	apprecuento "github.com/jhoicas/recuento-api/internal/application/recuento"
	"github.com/jhoicas/recuento-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del ciclo de conciliación.
type InventoryHandler struct {
	uc *apprecuento.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *apprecuento.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Upload godoc
// @Summary      Cargar libro de inventario
// @Tags         inventory
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Libro .xlsx sin encabezado"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /upload-excel [post]
func (h *InventoryHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se recibió ningún archivo"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo abrir el archivo subido"})
	}
	defer file.Close()

	out, err := h.uc.Upload(fileHeader.Filename, file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ScanItem godoc
// @Summary      Escanear artículo por identificador
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "Identificador y delta de cantidad"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /scan-item [post]
func (h *InventoryHandler) ScanItem(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ScanByID(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ScanItemByName godoc
// @Summary      Escanear artículo por nombre exacto de producto
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanByNameRequest  true  "Nombre de producto y delta de cantidad"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /scan-item-by-name [post]
func (h *InventoryHandler) ScanItemByName(c *fiber.Ctx) error {
	var in dto.ScanByNameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ScanByName(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchItems godoc
// @Summary      Buscar artículos por nombre de producto
// @Tags         inventory
// @Produce      json
// @Param        q  query  string  false  "Subcadena a buscar (insensible a mayúsculas)"
// @Success      200  {array}  dto.SearchResult
// @Router       /search-items [get]
func (h *InventoryHandler) SearchItems(c *fiber.Ctx) error {
	return c.JSON(h.uc.Search(c.Query("q")))
}

// Summary godoc
// @Summary      Resumen completo de conciliación
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /get-scanned-summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// DeleteUploaded godoc
// @Summary      Eliminar el inventario cargado en memoria
// @Description  Vacía el store en memoria; el libro persistido no se toca.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /delete-uploaded [delete]
func (h *InventoryHandler) DeleteUploaded(c *fiber.Ctx) error {
	return c.JSON(h.uc.Clear())
}

// ExportReport godoc
// @Summary      Reporte PDF del resumen de conciliación
// @Tags         inventory
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /export-report [get]
func (h *InventoryHandler) ExportReport(c *fiber.Ctx) error {
	out, err := h.uc.Report()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recuento.pdf"`)
	return c.Send(out)
}

// respondError mapea la taxonomía de errores de dominio a estados HTTP.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
	case errors.Is(err, domain.ErrSyncFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SYNC_FAILURE", Message: err.Error()})
	case errors.Is(err, domain.ErrLoadFailure):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOAD_FAILURE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
