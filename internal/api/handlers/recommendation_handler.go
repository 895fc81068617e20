package handlers

import (
	"errors"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/api/presenters"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/pkg/recommendation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecommendationHandler interface {
		GetFoodRecommendations(c *fiber.Ctx) error
	}

	recommendationHandler struct {
		recommendationService recommendation.RecommendationService
		validator             *validator.Validate
	}
)

func NewRecommendationHandler(recommendationService recommendation.RecommendationService, validator *validator.Validate) RecommendationHandler {
	return &recommendationHandler{
		recommendationService: recommendationService,
		validator:             validator,
	}
}

func (h *recommendationHandler) GetFoodRecommendations(c *fiber.Ctx) error {
	req := new(domain.GetFoodRecommendationsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecommendations, utils.ToInputValidationError(err))
	}

	dishes, err := h.recommendationService.GetFoodRecommendations(c.UserContext(), req.ToProfile())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProfile) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGetRecommendations, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecommendations, err)
	}

	if len(dishes) == 0 {
		return presenters.SuccessResponse(c, domain.GetFoodRecommendationsResponse{
			Dishes:  []domain.Dish{},
			Total:   0,
			Message: domain.MessageNoRecommendations,
		}, fiber.StatusOK, domain.MessageNoRecommendations)
	}

	return presenters.SuccessResponse(c, domain.GetFoodRecommendationsResponse{
		Dishes: dishes,
		Total:  len(dishes),
	}, fiber.StatusOK, domain.MessageSuccessGetRecommendations)
}
