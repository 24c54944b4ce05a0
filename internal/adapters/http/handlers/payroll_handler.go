package handlers

import (
	"errors"
	"fmt"

	"sharebrasil-ops/internal/core/domain"
	"sharebrasil-ops/internal/core/services"
	"sharebrasil-ops/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PayrollHandler handles payroll document endpoints
type PayrollHandler struct {
	payrollService *services.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// Upload uploads a payroll document
// @Summary Upload payroll document
// @Description Store a payroll document; metadata in the database, content in object storage
// @Tags Payroll
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Param folder formData string false "Target folder"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payroll/documents [post]
func (h *PayrollHandler) Upload(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "Cannot read uploaded file")
	}
	defer file.Close()

	input := &services.UploadInput{
		Filename:    fileHeader.Filename,
		Folder:      c.FormValue("folder"),
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
	}

	doc, err := h.payrollService.Upload(c.Context(), userID, input, file)
	if err != nil {
		return h.payrollError(c, err, "Failed to upload document")
	}

	return response.Created(c, "Document uploaded", fiber.Map{
		"document": doc,
	})
}

// List lists the acting user's payroll documents
// @Summary List payroll documents
// @Description List own payroll documents, newest first, optionally by folder
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param folder query string false "Filter by folder"
// @Success 200 {object} response.Response
// @Router /payroll/documents [get]
func (h *PayrollHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	folder := c.Query("folder")

	docs, err := h.payrollService.List(c.Context(), userID, folder)
	if err != nil {
		return h.payrollError(c, err, "Failed to list documents")
	}

	return response.Success(c, "Documents retrieved", fiber.Map{
		"documents": docs,
		"total":     len(docs),
	})
}

// Download streams a payroll document's content
// @Summary Download payroll document
// @Description Download the content of one of your payroll documents
// @Tags Payroll
// @Produce octet-stream
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.Response
// @Router /payroll/documents/{id}/download [get]
func (h *PayrollHandler) Download(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	docID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	doc, body, err := h.payrollService.Download(c.Context(), userID, docID)
	if err != nil {
		return h.payrollError(c, err, "Failed to download document")
	}

	if doc.ContentType != "" {
		c.Set(fiber.HeaderContentType, doc.ContentType)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))

	return c.SendStream(body)
}

// Get gets a payroll document's metadata
// @Summary Get payroll document
// @Description Get the metadata of one of your payroll documents
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payroll/documents/{id} [get]
func (h *PayrollHandler) Get(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	docID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	doc, err := h.payrollService.Get(c.Context(), userID, docID)
	if err != nil {
		return h.payrollError(c, err, "Failed to get document")
	}

	return response.Success(c, "Document retrieved", fiber.Map{
		"document": doc,
	})
}

// Delete deletes a payroll document
// @Summary Delete payroll document
// @Description Delete one of your payroll documents and its stored content
// @Tags Payroll
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payroll/documents/{id} [delete]
func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	docID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid document ID")
	}

	if err := h.payrollService.Delete(c.Context(), userID, docID); err != nil {
		return h.payrollError(c, err, "Failed to delete document")
	}

	return response.Success(c, "Document deleted", nil)
}

func (h *PayrollHandler) payrollError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, services.ErrPayrollDocumentNotFound):
		return response.NotFound(c, "Document not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c, "Store unavailable, please retry")
	default:
		return response.InternalServerError(c, fallback)
	}
}
