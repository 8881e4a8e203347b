package inventory

import (
	"bytes"
	"errors"

	"inventory-manager/core/logger"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service  *Service
	validate *validator.Validate
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")

	group.Get("/products", h.HandleListProducts)
	group.Post("/products", h.HandleAddProduct)
	group.Delete("/products", h.HandleReset)
	group.Post("/products/quick", h.HandleQuickAdd)
	group.Get("/products/barcode/:barcode", h.HandleFindByBarcode)
	group.Get("/products/:id", h.HandleGetProduct)
	group.Put("/products/:id", h.HandleUpdateProduct)
	group.Patch("/products/:id/stock", h.HandleAdjustStock)
	group.Delete("/products/:id", h.HandleDeleteProduct)

	group.Post("/import", h.HandleImportFile)
	group.Post("/import/rows", h.HandleImportRows)
	group.Post("/import/object", h.HandleImportObject)
	group.Get("/import/objects", h.HandleListImportObjects)

	group.Get("/report", h.HandleReport)
	group.Get("/report/low-stock", h.HandleLowStock)
	group.Get("/export", h.HandleExport)
	group.Get("/integrity", h.HandleIntegrity)
}

// importRowsRequest is the body of POST /inventory/import/rows.
type importRowsRequest struct {
	Source  string `json:"source"`
	Rows    []any  `json:"rows" validate:"required"`
	Mode    string `json:"mode" validate:"omitempty,oneof=merge replace"`
	DryRun  bool   `json:"dry_run"`
	Confirm bool   `json:"confirm"`
}

// importObjectRequest is the body of POST /inventory/import/object.
type importObjectRequest struct {
	Object  string `json:"object" validate:"required"`
	Mode    string `json:"mode" validate:"omitempty,oneof=merge replace"`
	DryRun  bool   `json:"dry_run"`
	Confirm bool   `json:"confirm"`
}

// HandleListProducts returns the catalog.
// @Summary List Products
// @Tags inventory
// @Produce json
// @Param category query string false "Only this category"
// @Success 200 {array} models.Product
// @Router /inventory/products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context(), c.Query("category"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product.
// @Summary Get Product
// @Tags inventory
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /inventory/products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	p, err := h.service.GetProduct(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleFindByBarcode looks a product up by scanned code.
// @Summary Find By Barcode
// @Tags inventory
// @Produce json
// @Param barcode path string true "Barcode or SKU"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /inventory/products/barcode/{barcode} [get]
func (h *Handler) HandleFindByBarcode(c *fiber.Ctx) error {
	p, err := h.service.FindByBarcode(c.Context(), c.Params("barcode"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleAddProduct creates a product from the manual form.
// @Summary Add Product
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body models.ProductInput true "Product"
// @Success 201 {object} models.Product
// @Router /inventory/products [post]
func (h *Handler) HandleAddProduct(c *fiber.Ctx) error {
	var in models.ProductInput
	if err := h.bind(c, &in); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.service.AddProduct(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleQuickAdd creates a product from a name and a price.
// @Summary Quick Add
// @Tags inventory
// @Accept json
// @Produce json
// @Param product body models.QuickAddInput true "Product"
// @Success 201 {object} models.Product
// @Router /inventory/products/quick [post]
func (h *Handler) HandleQuickAdd(c *fiber.Ctx) error {
	var in models.QuickAddInput
	if err := h.bind(c, &in); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.service.QuickAdd(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleUpdateProduct edits a product.
// @Summary Update Product
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.ProductInput true "Product"
// @Success 200 {object} models.Product
// @Router /inventory/products/{id} [put]
func (h *Handler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	var in models.ProductInput
	if err := h.bind(c, &in); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.service.UpdateProduct(c.Context(), id, in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleAdjustStock changes a product's stock by a delta.
// @Summary Adjust Stock
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body models.StockAdjustment true "Delta"
// @Success 200 {object} models.Product
// @Router /inventory/products/{id}/stock [patch]
func (h *Handler) HandleAdjustStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	var in models.StockAdjustment
	if err := h.bind(c, &in); err != nil {
		return badRequest(c, err.Error())
	}
	p, err := h.service.AdjustStock(c.Context(), id, in.Delta)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleDeleteProduct removes a product.
// @Summary Delete Product
// @Tags inventory
// @Param id path int true "Product ID"
// @Success 204
// @Router /inventory/products/{id} [delete]
func (h *Handler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleReset empties the catalog. Requires confirm=true.
// @Summary Reset Catalog
// @Tags inventory
// @Param confirm query bool true "Must be true"
// @Success 204
// @Router /inventory/products [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	if !utils.ToBool(c.Query("confirm")) {
		return badRequest(c, "reset requires confirm=true")
	}
	if err := h.service.Reset(c.Context()); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleImportFile imports an uploaded csv, tsv or xlsx file.
// @Summary Import File
// @Description Merge (default) or replace the catalog from a file. Replace needs confirm=true to be written.
// @Tags inventory
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Inventory sheet"
// @Param mode query string false "merge or replace"
// @Param dry_run query bool false "Only compute the outcome"
// @Param confirm query bool false "Confirm a replace"
// @Success 200 {object} models.ImportReport
// @Router /inventory/import [post]
func (h *Handler) HandleImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer f.Close()

	opts := ImportOptions{
		Mode:      firstNonEmpty(c.Query("mode"), c.FormValue("mode")),
		DryRun:    utils.ToBool(c.Query("dry_run")) || utils.ToBool(c.FormValue("dry_run")),
		Confirmed: utils.ToBool(c.Query("confirm")) || utils.ToBool(c.FormValue("confirm")),
	}
	report, err := h.service.ImportFile(c.Context(), fh.Filename, f, opts)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleImportRows imports rows sent as JSON arrays.
// @Summary Import Rows
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} models.ImportReport
// @Router /inventory/import/rows [post]
func (h *Handler) HandleImportRows(c *fiber.Ctx) error {
	var req importRowsRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	source := firstNonEmpty(req.Source, "request")
	report, err := h.service.Import(c.Context(), source, utils.ToRows(req.Rows), ImportOptions{
		Mode:      req.Mode,
		DryRun:    req.DryRun,
		Confirmed: req.Confirm,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleImportObject imports a file already uploaded to the bucket.
// @Summary Import Object
// @Tags inventory
// @Accept json
// @Produce json
// @Success 200 {object} models.ImportReport
// @Router /inventory/import/object [post]
func (h *Handler) HandleImportObject(c *fiber.Ctx) error {
	var req importObjectRequest
	if err := h.bind(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	report, err := h.service.ImportObject(c.Context(), req.Object, ImportOptions{
		Mode:      req.Mode,
		DryRun:    req.DryRun,
		Confirmed: req.Confirm,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleListImportObjects lists importable files in the bucket.
// @Summary List Import Objects
// @Tags inventory
// @Produce json
// @Param prefix query string false "Key prefix"
// @Success 200 {array} string
// @Router /inventory/import/objects [get]
func (h *Handler) HandleListImportObjects(c *fiber.Ctx) error {
	names, err := h.service.ListImportObjects(c.Context(), c.Query("prefix"))
	if err != nil {
		return h.fail(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// HandleReport returns the inventory summary.
// @Summary Inventory Report
// @Tags inventory
// @Produce json
// @Success 200 {object} models.InventoryReport
// @Router /inventory/report [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	report, err := h.service.InventoryReport(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleLowStock lists products that need reordering.
// @Summary Low Stock
// @Tags inventory
// @Produce json
// @Success 200 {array} models.Product
// @Router /inventory/report/low-stock [get]
func (h *Handler) HandleLowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(products)
}

// HandleExport downloads the catalog.
// @Summary Export Catalog
// @Tags inventory
// @Produce text/csv
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Router /inventory/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	switch c.Query("format", "csv") {
	case "csv":
		if _, err := h.service.ExportCSV(c.Context(), &buf); err != nil {
			return h.fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Attachment("inventory.csv")
	case "xlsx":
		if _, err := h.service.ExportSheet(c.Context(), &buf); err != nil {
			return h.fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Attachment("inventory.xlsx")
	default:
		return badRequest(c, "format must be csv or xlsx")
	}
	return c.Send(buf.Bytes())
}

// HandleIntegrity checks the catalog for ambiguous keys and invalid records.
// @Summary Catalog Integrity
// @Tags inventory
// @Produce json
// @Success 200 {object} models.IntegrityReport
// @Router /inventory/integrity [get]
func (h *Handler) HandleIntegrity(c *fiber.Ctx) error {
	report, err := h.service.CheckIntegrity(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// bind parses and validates the request body.
func (h *Handler) bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return errors.New("invalid request body")
	}
	return h.validate.Struct(out)
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrObjectNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidMode), errors.Is(err, ErrNoCandidates):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrUnsupportedFormat):
		status = fiber.StatusUnsupportedMediaType
	case errors.Is(err, ErrStorageDisabled):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Inventory request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
