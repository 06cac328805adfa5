package orders

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/mockapi"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/presentation/http/response"
	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

// Handler serves the dashboard API wire contract from the mock dataset.
type Handler struct {
	data   *mockapi.Dataset
	apiKey string
	logger *zap.Logger
}

// NewHandler constructs the mock API handler.
func NewHandler(data *mockapi.Dataset, cfg config.Config, logger *zap.Logger) *Handler {
	return &Handler{data: data, apiKey: cfg.API.Key, logger: logger}
}

// Register routes with the provided Echo instance. The config endpoint is
// public; everything else goes through the key check.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/app-config", h.appConfig)

	g := e.Group("", h.requireKey)
	g.GET("/orders", h.list)
	g.POST("/add-order", h.create)
	g.POST("/update-status", h.updateStatus)
	g.POST("/update-details", h.updateDetails)
}

// requireKey rejects requests whose key header does not match the
// configured key. With no key configured every request passes, mirroring an
// open site.
func (h *Handler) requireKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.apiKey != "" && c.Request().Header.Get("X-Api-Key") != h.apiKey {
			return response.New(c).WithError(errorbank.Auth("invalid API key")).Build()
		}
		return next(c)
	}
}

func (h *Handler) appConfig(c echo.Context) error {
	return response.New(c).WithData(h.data.AppConfig()).Build()
}

func (h *Handler) list(c echo.Context) error {
	q := mockapi.QueryFromValues(c.QueryParams())
	return response.New(c).WithData(h.data.List(q)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload dto.NewOrder
	if err := c.Bind(&payload); err != nil {
		return b.WithStatus(http.StatusBadRequest).
			WithError(errorbank.API("invalid payload", errorbank.WithCause(err))).Build()
	}

	result := h.data.Create(payload)
	if h.logger != nil {
		h.logger.Info("mock order accepted", zap.String("tracking_code", result.TrackingCode))
	}
	return b.WithStatus(http.StatusCreated).WithData(result).Build()
}

func (h *Handler) updateStatus(c echo.Context) error {
	b := response.New(c)

	var payload dto.StatusUpdate
	if err := c.Bind(&payload); err != nil {
		return b.WithStatus(http.StatusBadRequest).
			WithError(errorbank.API("invalid payload", errorbank.WithCause(err))).Build()
	}
	return b.WithData(h.data.SetStatus(payload)).Build()
}

func (h *Handler) updateDetails(c echo.Context) error {
	b := response.New(c)

	var payload dto.DetailsUpdate
	if err := c.Bind(&payload); err != nil {
		return b.WithStatus(http.StatusBadRequest).
			WithError(errorbank.API("invalid payload", errorbank.WithCause(err))).Build()
	}
	return b.WithData(h.data.SetDetails(payload)).Build()
}
