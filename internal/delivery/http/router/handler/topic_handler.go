package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "hub/internal/delivery/context"
	"hub/internal/delivery/http/response"
	domainerrors "hub/internal/domain/errors"
	"hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TopicHandler holds dependencies for topic and subscription handlers.
type TopicHandler struct {
	uc     usecase.TopicUsecase
	logger *slog.Logger
}

// NewTopicHandler is the constructor for TopicHandler, injected by Fx.
func NewTopicHandler(uc usecase.TopicUsecase, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the user-selectable topics.
func (h *TopicHandler) List(c echo.Context) error {
	topics, err := h.uc.ListTopics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, topics, "")
}

// Subscribe replaces the caller's subscription set with the submitted one.
func (h *TopicHandler) Subscribe(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.SubscribeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	subscriptions, err := h.uc.Subscribe(c.Request().Context(), accountID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "Subscriptions updated")
}

// Subscriptions returns the caller's current subscription set.
func (h *TopicHandler) Subscriptions(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c.Request().Context())
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	subscriptions, err := h.uc.ListSubscriptions(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "")
}
