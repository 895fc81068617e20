package handlers

import (
	"errors"
	"strconv"
	"strings"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/api/presenters"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/internal/utils/storage"
	"healthy-eats-backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		ListDishes(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		GetGreyZoneIngredients(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) ListDishes(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.catalogService.ListDishes(), fiber.StatusOK, domain.MessageSuccessGetDishes)
}

func (h *catalogHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.AddRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if err := parseNutritionForm(c, &req.NutritionSummary); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
		if photo, err := c.FormFile("photo"); err == nil {
			req.Photo = photo
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, utils.ToInputValidationError(err))
	}

	dish, err := h.catalogService.AddRecipe(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateDishName):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedDuplicateRecipe, err)
		case errors.Is(err, domain.ErrInvalidDish):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
		case errors.Is(err, storage.ErrFileTypeNotAllowed), errors.Is(err, storage.ErrStorageDisabled):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipePhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, dish, fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *catalogHandler) GetGreyZoneIngredients(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.GreyZoneIngredientsResponse{
		Ingredients: h.catalogService.GetGreyZoneIngredients(),
	}, fiber.StatusOK, domain.MessageSuccessGetGreyZone)
}

func parseNutritionForm(c *fiber.Ctx, n *domain.NutritionSummary) error {
	fields := []struct {
		key string
		dst *int
	}{
		{"calories", &n.Calories},
		{"protein", &n.Protein},
		{"carbohydrates", &n.Carbohydrates},
		{"fats", &n.Fats},
		{"sodium", &n.Sodium},
	}
	for _, f := range fields {
		raw := c.FormValue(f.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return &domain.InputValidationError{Field: f.key, Constraint: "must be a whole number"}
		}
		*f.dst = v
	}
	return nil
}
