package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthy-eats-backend/domain"
	"healthy-eats-backend/internal/api/handlers"
	"healthy-eats-backend/internal/metrics"
	"healthy-eats-backend/internal/middleware"
	"healthy-eats-backend/internal/utils"
	"healthy-eats-backend/pkg/auth"
	"healthy-eats-backend/pkg/catalog"
	"healthy-eats-backend/pkg/jwt"
	"healthy-eats-backend/pkg/recommendation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "correct-horse"

type response struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type RoutesSuite struct {
	suite.Suite
	app        *fiber.App
	jwtService jwt.JWTService
}

func newTestApp(dishes []domain.Dish) (*fiber.App, jwt.JWTService, error) {
	log := zap.NewNop()
	validator := utils.NewValidator()
	recorder := metrics.NewRecorder()

	catalogService, err := catalog.NewInMemoryCatalog(dishes, recommendation.DefaultGreyZone().Ingredients(), log)
	if err != nil {
		return nil, nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		return nil, nil, err
	}
	jwtService := jwt.NewJWTService("test-secret")
	recommendationService := recommendation.NewRecommendationService(catalogService, nil, recorder, log, recommendation.DefaultLimit)

	app := fiber.New()
	cfg := Config{
		App:                   app,
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService, validator),
		CatalogHandler:        handlers.NewCatalogHandler(catalogService, validator),
		AuthHandler:           handlers.NewAuthHandler(auth.NewAuthService(string(hash), jwtService, log), validator),
		Middleware:            middleware.NewMiddleware(),
		JWTService:            jwtService,
		Metrics:               recorder,
	}
	cfg.Setup()
	return app, jwtService, nil
}

func (s *RoutesSuite) SetupTest() {
	app, jwtService, err := newTestApp(catalog.DefaultDishes())
	s.Require().NoError(err)
	s.app = app
	s.jwtService = jwtService
}

func (s *RoutesSuite) do(app *fiber.App, req *http.Request) (int, response) {
	res, err := app.Test(req, -1)
	s.Require().NoError(err)
	defer res.Body.Close()

	var body response
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	if len(raw) > 0 && strings.HasPrefix(res.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		s.Require().NoError(json.Unmarshal(raw, &body))
	}
	return res.StatusCode, body
}

func jsonRequest(method, path string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func (s *RoutesSuite) adminToken() string {
	token, err := s.jwtService.GenerateToken("admin", domain.RoleAdmin)
	s.Require().NoError(err)
	return token
}

func profileBody() map[string]any {
	return map[string]any{
		"age":              35,
		"weight":           70,
		"systolicBP":       120,
		"diastolicBP":      80,
		"healthConditions": []string{},
		"allergies":        []string{},
	}
}

func (s *RoutesSuite) TestRecommendations() {
	body := profileBody()
	body["favoriteFood"] = "Pizza"
	body["allergies"] = []string{"dairy"}

	status, res := s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/recommendations", body))

	s.Equal(http.StatusOK, status)
	s.True(res.Status)
	var data domain.GetFoodRecommendationsResponse
	s.Require().NoError(json.Unmarshal(res.Data, &data))
	s.Require().NotEmpty(data.Dishes)
	s.Equal(len(data.Dishes), data.Total)
	s.Equal("Star Meal: Pizza", data.Dishes[0].Name)
}

func (s *RoutesSuite) TestRecommendationsValidation() {
	tests := []struct {
		name   string
		mutate func(b map[string]any)
		want   string
	}{
		{"age zero", func(b map[string]any) { b["age"] = 0 }, "age must be between 1 and 120 years"},
		{"age 121", func(b map[string]any) { b["age"] = 121 }, "age must be between 1 and 120 years"},
		{"weight 501", func(b map[string]any) { b["weight"] = 501 }, "weight must be between 1 and 500 kg"},
		{"systolic equals diastolic", func(b map[string]any) { b["systolicBP"], b["diastolicBP"] = 100, 100 },
			"systolicBP must be higher than diastolicBP (valid range between 60 and 250 mmHg)"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := profileBody()
			tt.mutate(body)

			status, res := s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/recommendations", body))

			s.Equal(http.StatusBadRequest, status)
			s.False(res.Status)
			s.Equal(tt.want, res.Error)
		})
	}
}

func (s *RoutesSuite) TestRecommendationsMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	status, res := s.do(s.app, req)

	s.Equal(http.StatusBadRequest, status)
	s.Equal(domain.MessageFailedBodyRequest, res.Message)
}

func (s *RoutesSuite) TestRecommendationsEmpty() {
	app, _, err := newTestApp([]domain.Dish{
		{Name: "Milk Rice", Ingredients: []string{"rice", "whole milk"}},
	})
	s.Require().NoError(err)
	body := profileBody()
	body["allergies"] = []string{"milk"}

	status, res := s.do(app, jsonRequest(http.MethodPost, "/api/v1/recommendations", body))

	s.Equal(http.StatusOK, status)
	s.Equal(domain.MessageNoRecommendations, res.Message)
	var data domain.GetFoodRecommendationsResponse
	s.Require().NoError(json.Unmarshal(res.Data, &data))
	s.NotNil(data.Dishes)
	s.Empty(data.Dishes)
	s.Zero(data.Total)
}

func (s *RoutesSuite) TestListDishesAndGreyZone() {
	status, res := s.do(s.app, httptest.NewRequest(http.MethodGet, "/api/v1/dishes", nil))
	s.Equal(http.StatusOK, status)
	var dishes []domain.Dish
	s.Require().NoError(json.Unmarshal(res.Data, &dishes))
	s.Len(dishes, len(catalog.DefaultDishes()))

	status, res = s.do(s.app, httptest.NewRequest(http.MethodGet, "/api/v1/grey-zone-ingredients", nil))
	s.Equal(http.StatusOK, status)
	var grey domain.GreyZoneIngredientsResponse
	s.Require().NoError(json.Unmarshal(res.Data, &grey))
	s.Contains(grey.Ingredients, "salt")
}

func (s *RoutesSuite) TestAdminLogin() {
	status, res := s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/admin/login", domain.LoginRequest{Password: adminPassword}))
	s.Equal(http.StatusOK, status)
	var login domain.LoginResponse
	s.Require().NoError(json.Unmarshal(res.Data, &login))
	s.NotEmpty(login.Token)
	s.Equal(domain.RoleAdmin, login.Role)

	status, _ = s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/admin/login", domain.LoginRequest{Password: "wrong-password"}))
	s.Equal(http.StatusUnauthorized, status)

	status, res = s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/admin/login", domain.LoginRequest{Password: "short"}))
	s.Equal(http.StatusBadRequest, status)
	s.Equal("password must be at least 8", res.Error)
}

func (s *RoutesSuite) TestAddRecipeRequiresAdmin() {
	recipe := map[string]any{"name": "Kale Bowl", "ingredients": []string{"kale"}}

	status, _ := s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/recipes", recipe))
	s.Equal(http.StatusUnauthorized, status)

	req := jsonRequest(http.MethodPost, "/api/v1/recipes", recipe)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer nonsense")
	status, _ = s.do(s.app, req)
	s.Equal(http.StatusUnauthorized, status)

	userToken, err := s.jwtService.GenerateToken("someone", "user")
	s.Require().NoError(err)
	req = jsonRequest(http.MethodPost, "/api/v1/recipes", recipe)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+userToken)
	status, _ = s.do(s.app, req)
	s.Equal(http.StatusForbidden, status)
}

func (s *RoutesSuite) TestAddRecipeJSON() {
	recipe := map[string]any{
		"name":             "Kale Bowl",
		"ingredients":      []string{"kale", "quinoa"},
		"instructions":     []string{"Mix."},
		"nutritionSummary": map[string]int{"calories": 300, "sodium": 120},
	}
	send := func(payload map[string]any) (int, response) {
		req := jsonRequest(http.MethodPost, "/api/v1/recipes", payload)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.adminToken())
		return s.do(s.app, req)
	}

	status, res := send(recipe)
	s.Equal(http.StatusCreated, status)
	var dish domain.Dish
	s.Require().NoError(json.Unmarshal(res.Data, &dish))
	s.Equal("Kale Bowl", dish.Name)
	s.Equal(120, dish.NutritionSummary.Sodium)

	recipe["name"] = "  kale BOWL "
	status, res = send(recipe)
	s.Equal(http.StatusConflict, status)
	s.Equal(domain.MessageFailedDuplicateRecipe, res.Message)

	recipe["name"] = "Salty Bowl"
	recipe["nutritionSummary"] = map[string]int{"sodium": -5}
	status, _ = send(recipe)
	s.Equal(http.StatusBadRequest, status)

	status, res = s.do(s.app, httptest.NewRequest(http.MethodGet, "/api/v1/dishes", nil))
	s.Equal(http.StatusOK, status)
	var dishes []domain.Dish
	s.Require().NoError(json.Unmarshal(res.Data, &dishes))
	s.Len(dishes, len(catalog.DefaultDishes())+1)
}

func (s *RoutesSuite) TestAddRecipeMultipart() {
	build := func(fields map[string][]string) *http.Request {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for k, values := range fields {
			for _, v := range values {
				s.Require().NoError(w.WriteField(k, v))
			}
		}
		s.Require().NoError(w.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes", &buf)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+s.adminToken())
		return req
	}

	status, res := s.do(s.app, build(map[string][]string{
		"name":        {"Roasted Roots"},
		"ingredients": {"carrots", "parsnips"},
		"calories":    {"280"},
		"sodium":      {"95"},
	}))
	s.Equal(http.StatusCreated, status)
	var dish domain.Dish
	s.Require().NoError(json.Unmarshal(res.Data, &dish))
	s.Equal([]string{"carrots", "parsnips"}, dish.Ingredients)
	s.Equal(280, dish.NutritionSummary.Calories)
	s.Equal(95, dish.NutritionSummary.Sodium)

	status, res = s.do(s.app, build(map[string][]string{
		"name":     {"Bad Numbers"},
		"calories": {"lots"},
	}))
	s.Equal(http.StatusBadRequest, status)
	s.Equal("calories must be a whole number", res.Error)
}

func (s *RoutesSuite) TestPingAndMetrics() {
	status, _ := s.do(s.app, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	s.Equal(http.StatusOK, status)

	s.do(s.app, jsonRequest(http.MethodPost, "/api/v1/recommendations", profileBody()))

	res, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	s.Require().NoError(err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, res.StatusCode)
	s.Contains(string(raw), "healthy_eats_recommendations_total")
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}
