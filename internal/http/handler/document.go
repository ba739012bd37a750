package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docmedia/internal/media"
	"docmedia/internal/service"
)

// uploadRequest is the body of POST /upload. File carries a data-URI or raw
// base64 payload; Kind optionally pins the variant instead of signature
// detection.
type uploadRequest struct {
	File string `json:"file"`
	Kind string `json:"kind,omitempty"`
}

// UploadDocument ingests a base64 payload and responds with the created
// record's metadata. Decode and extraction failures are reported as 400 with
// the error text; no failure escapes the handler.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		if req.File == "" {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		res, err := svc.Upload(c.UserContext(), req.File, req.Kind)
		if err != nil {
			switch {
			case errors.Is(err, media.ErrInvalidEncoding):
				return writeError(c, fiber.StatusBadRequest, "INVALID_ENCODING", err.Error())
			case errors.Is(err, media.ErrDecode):
				return writeError(c, fiber.StatusBadRequest, "DECODE_FAILED", err.Error())
			case errors.Is(err, service.ErrInvalidKind):
				return writeError(c, fiber.StatusBadRequest, "INVALID_KIND", err.Error())
			default:
				// Broad boundary catch: any ingest failure reports as 400.
				return writeError(c, fiber.StatusBadRequest, "UPLOAD_FAILED", err.Error())
			}
		}
		return c.JSON(res)
	}
}

// ListImages returns a page of image records with limit & offset.
func ListImages(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, badParam := pageParams(c)
		if badParam != "" {
			return writeError(c, fiber.StatusBadRequest, badParam, "limit and offset must be integers")
		}
		res, lErr := svc.ListImages(c.UserContext(), limit, offset)
		if lErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetImage returns a single image record by ID.
func GetImage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		img, gErr := svc.GetImage(c.UserContext(), id)
		if gErr != nil {
			return mapLookupError(c, gErr)
		}
		return c.JSON(img)
	}
}

// DeleteImage removes an image record, cascading to its blob.
func DeleteImage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if dErr := svc.DeleteImage(c.UserContext(), id); dErr != nil {
			return mapLookupError(c, dErr)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListPDFs returns a page of PDF records with limit & offset.
func ListPDFs(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, badParam := pageParams(c)
		if badParam != "" {
			return writeError(c, fiber.StatusBadRequest, badParam, "limit and offset must be integers")
		}
		res, lErr := svc.ListPDFs(c.UserContext(), limit, offset)
		if lErr != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetPDF returns a single PDF record by ID.
func GetPDF(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		pdf, gErr := svc.GetPDF(c.UserContext(), id)
		if gErr != nil {
			return mapLookupError(c, gErr)
		}
		return c.JSON(pdf)
	}
}

// DeletePDF removes a PDF record, cascading to its blob.
func DeletePDF(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if dErr := svc.DeletePDF(c.UserContext(), id); dErr != nil {
			return mapLookupError(c, dErr)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// pageParams parses the limit & offset query params. A non-empty badParam is
// the error code for the parameter that failed to parse; the caller writes
// the 400 and must not call the service.
func pageParams(c *fiber.Ctx) (limit, offset int, badParam string) {
	var err error
	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, "INVALID_LIMIT"
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, "INVALID_OFFSET"
	}
	return limit, offset, ""
}

// pathID validates the :id path segment. ok is false when it is not a UUID;
// the caller writes the 400 and must not call the service.
func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func mapLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
