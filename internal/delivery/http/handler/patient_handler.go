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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	tokenUsecase   usecase.TokenUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, tokenUsecase usecase.TokenUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		tokenUsecase:   tokenUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	patient, err := h.patientUsecase.Signup(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrAccountExists:
			response.Conflict(w, "Email or phone already registered")
		default:
			response.InternalServerError(w, "Failed to sign up")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", patient)
}

func (h *PatientHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	token, err := h.patientUsecase.Login(r.Context(), &req)
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

// Details returns the profile of the patient the token belongs to.
func (h *PatientHandler) Details(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RolePatient); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}
	email, _ := h.tokenUsecase.Identifier(token)

	patient, err := h.patientUsecase.Details(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to load patient details")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient details", patient)
}

// Appointments lists every appointment of the token's patient.
func (h *PatientHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RolePatient); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}
	email, _ := h.tokenUsecase.Identifier(token)

	appointments, err := h.patientUsecase.Appointments(r.Context(), email)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to load appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient appointments", appointments)
}

// Filter narrows the token's appointments by ?condition= (past/future)
// and/or ?name= (doctor name).
func (h *PatientHandler) Filter(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RolePatient); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}
	email, _ := h.tokenUsecase.Identifier(token)

	condition := r.URL.Query().Get("condition")
	doctorName := r.URL.Query().Get("name")

	appointments, err := h.patientUsecase.FilterAppointments(r.Context(), email, condition, doctorName)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidCondition:
			response.Error(w, http.StatusBadRequest, "Condition must be past or future", nil)
		default:
			response.InternalServerError(w, "Failed to filter appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Filtered appointments", appointments)
}
