package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/delivery/http/response"
	"hub/internal/domain/entity"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like-counter handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle flips or explicitly sets the caller's like state for one item.
func (h *LikeHandler) Toggle(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.ToggleLikeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid like input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Toggle(c.Request().Context(), accountID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Like state updated")
}

// Status returns the caller's like state and the total for one item.
func (h *LikeHandler) Status(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	key, err := likeKeyFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	status, err := h.uc.Status(c.Request().Context(), accountID, key)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// BatchStatus returns like state for several items sharing one dimension
// and category, ordered as requested.
func (h *LikeHandler) BatchStatus(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productType, err := queryInt(c, "product_type")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	rawIDs := c.QueryParam("product_ids")
	if rawIDs == "" {
		return response.BadRequest(c, "INVALID_INPUT", "product_ids is required")
	}

	productIDs := make([]string, 0)
	for _, id := range strings.Split(rawIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			productIDs = append(productIDs, id)
		}
	}
	if len(productIDs) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "product_ids is required")
	}

	statuses, err := h.uc.BatchStatus(c.Request().Context(), accountID, c.QueryParam("mfd"), productType, productIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statuses, "")
}

func likeKeyFromQuery(c echo.Context) (entity.LikeKey, error) {
	productID := c.QueryParam("product_id")
	if productID == "" {
		return entity.LikeKey{}, errors.New("product_id is required")
	}

	productType, err := queryInt(c, "product_type")
	if err != nil {
		return entity.LikeKey{}, err
	}

	return entity.LikeKey{
		MFD:         c.QueryParam("mfd"),
		ProductType: productType,
		ProductID:   productID,
	}, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.Errorf("%s must be a non-negative integer", name)
	}

	return value, nil
}
