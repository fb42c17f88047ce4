package http

import (
	"github.com/gofiber/fiber/v2"

	apprecuento "github.com/jhoicas/recuento-api/internal/application/recuento"
	"github.com/jhoicas/recuento-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *apprecuento.UseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API. Las rutas conservan el contrato del
// frontend de recuento: /upload-excel, /scan-item, /scan-item-by-name,
// /search-items, /get-scanned-summary, /delete-uploaded.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Log))

	h := NewInventoryHandler(deps.InventoryUC)
	app.Post("/upload-excel", h.Upload)
	app.Post("/scan-item", h.ScanItem)
	app.Post("/scan-item-by-name", h.ScanItemByName)
	app.Get("/search-items", h.SearchItems)
	app.Get("/get-scanned-summary", h.Summary)
	app.Delete("/delete-uploaded", h.DeleteUploaded)
	app.Get("/export-report", h.ExportReport)
}
