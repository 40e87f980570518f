package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

func (h *ProductHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

func (h *ProductHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	products, err := h.productUseCase.ListMyProducts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.ProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) RequestRawMaterial(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.RawMaterialInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, matches, err := h.productUseCase.RequestRawMaterial(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]interface{}{
		"request": request,
		"matches": matches,
	})
}

func (h *ProductHandler) ListRawMaterialRequests(c echo.Context) error {
	uid := c.Get("uid").(string)

	requests, err := h.productUseCase.ListRawMaterialRequests(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *ProductHandler) MarkRawMaterialContacted(c echo.Context) error {
	uid := c.Get("uid").(string)

	request, err := h.productUseCase.MarkRawMaterialContacted(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, request)
}

func (h *ProductHandler) MatchingSuppliers(c echo.Context) error {
	matches, err := h.productUseCase.MatchingSuppliers(c.Request().Context(), c.QueryParam("millet_type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, matches)
}

func (h *ProductHandler) CreatePartnership(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.PartnershipInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	partnership, err := h.productUseCase.CreatePartnership(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, partnership)
}

func (h *ProductHandler) ListPartnerships(c echo.Context) error {
	uid := c.Get("uid").(string)

	partnerships, err := h.productUseCase.ListPartnerships(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, partnerships)
}

func (h *ProductHandler) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.productUseCase.Stats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
