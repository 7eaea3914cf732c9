package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetHandler handles HTTP requests for catalog and stock operations.
type SweetHandler struct {
	sweets    ports.SweetService
	movements ports.MovementService
}

func NewSweetHandler(sweets ports.SweetService, movements ports.MovementService) *SweetHandler {
	return &SweetHandler{sweets: sweets, movements: movements}
}

// Create handles POST /v1/sweets — admin only.
//
// @Summary      Create a catalog entry
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sweet, err := h.sweets.Create(c.Request().Context(), ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// List handles GET /v1/sweets — all filters optional, combined with AND.
//
// @Summary      List and search the catalog
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name      query     string  false  "Substring match on name"
// @Param        category  query     string  false  "Substring match on category"
// @Param        minPrice  query     number  false  "Inclusive lower price bound"
// @Param        maxPrice  query     number  false  "Inclusive upper price bound"
// @Success      200       {object}  listSweetsResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	filter := ports.ListSweetsFilter{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
		}
		filter.MaxPrice = &v
	}

	sweets, err := h.sweets.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListSweetsResponse(sweets))
}

// Get handles GET /v1/sweets/:id.
//
// @Summary      Get a single sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/sweets/{id} [get]
func (h *SweetHandler) Get(c echo.Context) error {
	sweet, err := h.sweets.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Update handles PUT /v1/sweets/:id — admin only; partial edit.
//
// @Summary      Update a catalog entry
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to change"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sweet, err := h.sweets.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /v1/sweets/:id — admin only.
//
// @Summary      Delete a catalog entry
// @Tags         sweets
// @Security     BearerAuth
// @Param        id  path  string  true  "Sweet id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.sweets.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Purchase handles POST /v1/sweets/:id/purchase — any authenticated role.
// An omitted quantity defaults to 1.
//
// @Summary      Purchase a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true   "Sweet id"
// @Param        body  body      adjustStockRequest  false  "Purchase quantity (defaults to 1)"
// @Success      200   {object}  sweetResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	amount := 1
	if req.Quantity != nil {
		amount = *req.Quantity
	}

	sweet, err := h.sweets.Purchase(c.Request().Context(), ports.AdjustStockInput{
		SweetID: c.Param("id"),
		Amount:  amount,
		Actor:   userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /v1/sweets/:id/restock — admin only.
//
// @Summary      Restock a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      adjustStockRequest  true  "Restock quantity"
// @Success      200   {object}  sweetResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	amount := 0
	if req.Quantity != nil {
		amount = *req.Quantity
	}

	sweet, err := h.sweets.Restock(c.Request().Context(), ports.AdjustStockInput{
		SweetID: c.Param("id"),
		Amount:  amount,
		Actor:   userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Movements handles GET /v1/sweets/:id/movements — admin only.
//
// @Summary      List the stock movement trail for a sweet
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Sweet id"
// @Param        limit  query     int     false  "Maximum entries to return"
// @Success      200    {object}  listMovementsResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /v1/sweets/{id}/movements [get]
func (h *SweetHandler) Movements(c echo.Context) error {
	id := c.Param("id")

	// Listing movements for a missing sweet is a 404, not an empty list.
	if _, err := h.sweets.Get(c.Request().Context(), id); err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = n
	}

	movements, err := h.movements.ListBySweet(c.Request().Context(), id, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListMovementsResponse(id, movements))
}
