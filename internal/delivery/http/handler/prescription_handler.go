package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
	"clinic-appointment-service/pkg/validator"

	"github.com/gorilla/mux"

	govalidator "github.com/go-playground/validator/v10"
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	tokenUsecase        usecase.TokenUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, tokenUsecase usecase.TokenUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		tokenUsecase:        tokenUsecase,
		validator:           validator,
	}
}

// Save records a prescription for an appointment and marks the visit
// completed. Doctor only.
func (h *PrescriptionHandler) Save(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RoleDoctor); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	var req dto.SavePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	prescription, err := h.prescriptionUsecase.Save(r.Context(), &req)
	if err != nil {
		if verrs, ok := err.(govalidator.ValidationErrors); ok {
			response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
			return
		}
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPrescriptionExists:
			response.Conflict(w, "Appointment already has a prescription")
		default:
			response.InternalServerError(w, "Failed to save prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription saved successfully", prescription)
}

// Get lists the prescriptions recorded for an appointment. Doctor only.
func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.tokenUsecase.ValidateToken(r.Context(), vars["token"], entity.RoleDoctor); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	prescriptions, err := h.prescriptionUsecase.GetByAppointment(r.Context(), appointmentID)
	if err != nil {
		response.InternalServerError(w, "Failed to load prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions", prescriptions)
}
