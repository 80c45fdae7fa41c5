package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/playerself/goauction/base/ctx"
	"github.com/playerself/goauction/base/delivery"
	"github.com/playerself/goauction/domain"
	"github.com/playerself/goauction/domain/registry"
	authMiddleware "github.com/playerself/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	registry registry.UseCase
}

// New wires the collection registry endpoints. Registration is admin only.
func New(e *echo.Echo, am *authMiddleware.AuthMiddleware, uc registry.UseCase) {
	h := &handler{registry: uc}

	g := e.Group("/collections")
	g.GET("", h.list)
	g.GET("/:address", h.get)
	g.POST("", h.register, am.Auth(), am.IsAdmin())
	g.PUT("/:address/enabled", h.setEnabled, am.Auth(), am.IsAdmin())
}

func (h *handler) list(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	res, err := h.registry.List(context)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	res, err := h.registry.Get(context, address)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) register(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" validate:"required"`
		TokenType int            `json:"tokenType" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.registry.Register(context, p.Address, domain.TokenType(p.TokenType)); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) setEnabled(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	type params struct {
		Enabled bool `json:"enabled"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		context.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.registry.SetEnabled(context, address, p.Enabled); err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
