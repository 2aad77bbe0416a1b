package handler

import (
	"encoding/json"
	"net/http"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"

	"github.com/gorilla/mux"

	govalidator "github.com/go-playground/validator/v10"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	tokenUsecase usecase.TokenUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, tokenUsecase usecase.TokenUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		tokenUsecase: tokenUsecase,
		validator:    validator,
	}
}

// Login handles admin login and returns a signed token.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	token, err := h.adminUsecase.Login(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid username or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Token(w, token)
}

// Dashboard serves /adminDashboard/{token}: a valid admin token gets the
// dashboard payload, anything else is sent back to the landing page.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RoleAdmin); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	identifier, _ := h.tokenUsecase.Identifier(token)
	response.Success(w, http.StatusOK, "Welcome to the admin dashboard", dto.DashboardResponse{
		Role:       entity.RoleAdmin,
		Identifier: identifier,
	})
}
