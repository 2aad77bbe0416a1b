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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	tokenUsecase       usecase.TokenUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, tokenUsecase usecase.TokenUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		tokenUsecase:       tokenUsecase,
		validator:          validator,
	}
}

// patientFromToken validates the patient token and resolves its account id.
// A false return means the response has already been written.
func (h *AppointmentHandler) patientFromToken(w http.ResponseWriter, r *http.Request, token string) (int64, bool) {
	if err := h.tokenUsecase.ValidateToken(r.Context(), token, entity.RolePatient); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return 0, false
	}
	patientID, ok := h.tokenUsecase.AccountID(r.Context(), token)
	if !ok {
		response.Unauthorized(w, "Invalid or expired token")
		return 0, false
	}
	return patientID, true
}

// Book creates an appointment for the token's patient.
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientFromToken(w, r, mux.Vars(r)["token"])
	if !ok {
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), patientID, &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// Update reschedules or edits an appointment owned by the token's patient.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.patientFromToken(w, r, mux.Vars(r)["token"])
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), patientID, &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// Cancel deletes an appointment owned by the token's patient.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, ok := h.patientFromToken(w, r, vars["token"])
	if !ok {
		return
	}

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment id", nil)
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), patientID, id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrNotOwner:
			response.Forbidden(w, "Appointment belongs to another patient")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// DoctorDay serves /appointments/{date}/{patientName}/{token}: the day
// schedule of the token's doctor, optionally filtered by patient name
// ("null"/"all" = no filter).
func (h *AppointmentHandler) DoctorDay(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.tokenUsecase.ValidateToken(r.Context(), vars["token"], entity.RoleDoctor); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}
	doctorID, ok := h.tokenUsecase.AccountID(r.Context(), vars["token"])
	if !ok {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	appointments, err := h.appointmentUsecase.DoctorDay(r.Context(), doctorID, vars["date"], vars["patientName"])
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to load appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor appointments", appointments)
}

func (h *AppointmentHandler) writeBookingError(w http.ResponseWriter, err error) {
	if verrs, ok := err.(govalidator.ValidationErrors); ok {
		response.ValidationError(w, h.validator.FormatValidationErrors(verrs))
		return
	}
	switch err {
	case usecase.ErrDoctorNotFound:
		response.Error(w, http.StatusBadRequest, "Doctor not found", nil)
	case usecase.ErrSlotUnavailable:
		response.Error(w, http.StatusBadRequest, "Appointment slot is not available", nil)
	case usecase.ErrInvalidDateTime:
		response.Error(w, http.StatusBadRequest, "Invalid datetime format, expected YYYY-MM-DDTHH:MM", nil)
	case usecase.ErrSlotTaken:
		response.Conflict(w, "Appointment slot was just booked")
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrNotOwner:
		response.Forbidden(w, "Appointment belongs to another patient")
	default:
		response.InternalServerError(w, "Failed to save appointment")
	}
}
