package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-system/internal/core/domain"
	"github.com/mywallet/wallet-system/internal/core/ports"
)

type RecordHandler struct {
	recordService ports.RecordService
}

func NewRecordHandler(recordService ports.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// List returns the session owner's ledger, most recent record first.
//
// A valid session with no records is a normal empty statement (200 with an
// empty array), never a 404; 404 is reserved for a token with no session.
//
// @Summary      List the session owner's records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Statement
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /records [get]
func (h *RecordHandler) List(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	statement, err := h.recordService.ListForToken(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, statement)
}

// Create inserts one record for the session owner, stamped with the server
// clock.
//
// @Summary      Create a record
// @Tags         records
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  createRecordRequest  true  "Record to insert"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /records [post]
func (h *RecordHandler) Create(c echo.Context) error {
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	var req createRecordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	req.sanitize()
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.recordService.Create(c.Request().Context(), token, req.Description, req.Value); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "session not found"})
		}
		return err
	}

	return c.NoContent(http.StatusOK)
}
