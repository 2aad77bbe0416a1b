package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"

	"github.com/gorilla/mux"

	govalidator "github.com/go-playground/validator/v10"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	tokenUsecase  usecase.TokenUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, tokenUsecase usecase.TokenUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		tokenUsecase:  tokenUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	token, err := h.doctorUsecase.Login(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Token(w, token)
}

// Create registers a new doctor. Admin only.
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RoleAdmin); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doctor, err := h.doctorUsecase.Create(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrEmailTaken:
			response.Conflict(w, "Email already registered")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

// Update modifies a doctor profile. Admin only.
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RoleAdmin); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Delete removes a doctor and their appointments. Admin only.
func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.tokenUsecase.ValidateToken(r.Context(), vars["token"], entity.RoleAdmin); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to delete doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// Filter lists doctors by name, AM/PM availability and specialty. Any of
// the three path segments may be "null" or "all" to mean no filter.
func (h *DoctorHandler) Filter(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctors, err := h.doctorUsecase.Filter(r.Context(), vars["name"], vars["time"], vars["speciality"])
	if err != nil {
		response.InternalServerError(w, "Failed to filter doctors")
		return
	}

	response.Success(w, http.StatusOK, "Filtered doctors", doctors)
}

// Availability lists the open slots of one doctor on one day. The {user}
// segment names the caller's role; the token must match it.
func (h *DoctorHandler) Availability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	role := strings.ToUpper(vars["user"])
	if role != entity.RoleDoctor && role != entity.RolePatient {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}
	if err := h.tokenUsecase.ValidateToken(r.Context(), vars["token"], role); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	availability, err := h.doctorUsecase.Availability(r.Context(), doctorID, vars["date"])
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to load availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor availability", availability)
}

// Dashboard serves /doctorDashboard/{token}: a valid doctor token gets the
// dashboard payload, anything else is sent back to the landing page.
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RoleDoctor); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	identifier, _ := h.tokenUsecase.Identifier(token)
	response.Success(w, http.StatusOK, "Welcome to the doctor dashboard", dto.DashboardResponse{
		Role:       entity.RoleDoctor,
		Identifier: identifier,
	})
}
