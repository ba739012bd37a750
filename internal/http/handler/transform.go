package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docmedia/internal/media"
	"docmedia/internal/service"
)

type rotateRequest struct {
	ImageID string  `json:"image_id"`
	Angle   float64 `json:"angle"`
}

type convertRequest struct {
	PDFID string `json:"pdf_id"`
}

// RotateImage rotates a stored image by the requested angle and responds
// with the result as a base64 PNG. The stored record is never mutated.
func RotateImage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req rotateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		if _, err := uuid.Parse(req.ImageID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "image_id must be a valid id")
		}

		rotated, err := svc.Rotate(c.UserContext(), req.ImageID, req.Angle)
		if err != nil {
			return mapTransformError(c, err)
		}
		return c.JSON(fiber.Map{"rotated_image": rotated})
	}
}

// ConvertPDFToImage rasterizes every page of a stored PDF and responds with
// the page count and ordered base64 PNGs.
func ConvertPDFToImage(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req convertRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		if _, err := uuid.Parse(req.PDFID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "pdf_id must be a valid id")
		}

		res, err := svc.Rasterize(c.UserContext(), req.PDFID)
		if err != nil {
			return mapTransformError(c, err)
		}
		return c.JSON(res)
	}
}

func mapTransformError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	case errors.Is(err, media.ErrDecode):
		return writeError(c, fiber.StatusBadRequest, "DECODE_FAILED", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
