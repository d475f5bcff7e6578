package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/session"
	"hospital-management-api/pkg/validator"
)

// allowed avatar content types, matching the portal's upload widget
var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

const maxAvatarMemory = 10 << 20 // 10 MiB buffered before spilling to disk

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
	sessions    *session.Service
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator, sessions *session.Service) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		sessions:    sessions,
	}
}

// RegisterPatient handles patient self-registration and opens a session for
// the new account.
func (h *UserHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			response.Conflict(w, "User already registered")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to register user")
		}
		return
	}

	h.issueSession(w, user, http.StatusCreated, "User Registered Successfully!")
}

// Login authenticates for the role named in the body and sets the matching
// cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordMismatch):
			response.BadRequest(w, "Password and Confirm Password don't match")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, usecase.ErrRoleMismatch):
			response.Forbidden(w, "User role doesn't match")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.issueSession(w, user, http.StatusOK, "User Logged In Successfully!")
}

// CreateAdmin is admin-only; no session is issued for the new account.
func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.userUsecase.CreateAdmin(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			response.Conflict(w, "A user with this email already exists")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create admin")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.StatusResponse{
		Success: true,
		Message: "New Admin Registered!",
	})
}

// CreateDoctor reads the multipart form, checks the avatar file, and hands
// both to the usecase. The avatar upload happens before the doctor row is
// written; an upstream failure aborts the whole creation.
func (h *UserHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("docAvatar")
	if err != nil {
		response.BadRequest(w, "Doctor Avatar Required!")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedAvatarTypes[contentType] {
		response.BadRequest(w, "File Format Not Supported")
		return
	}

	req := dto.CreateDoctorRequest{
		FirstName:        r.FormValue("firstName"),
		LastName:         r.FormValue("lastName"),
		Email:            r.FormValue("email"),
		Phone:            r.FormValue("phone"),
		Password:         r.FormValue("password"),
		Gender:           r.FormValue("gender"),
		AadharNumber:     r.FormValue("aadhar_number"),
		DateOfBirth:      r.FormValue("dob"),
		DoctorDepartment: r.FormValue("doctorDepartment"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	avatar := &usecase.AvatarUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		File:        file,
	}

	doctor, err := h.userUsecase.CreateDoctor(r.Context(), &req, avatar)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			response.Conflict(w, "A user with this email already exists")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrAvatarUpload):
			response.BadGateway(w, "Avatar upload failed, doctor not created")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.DoctorCreatedResponse{
		Success: true,
		Message: "New Doctor Registered!",
		Doctor:  doctor,
	})
}

// GetDoctors is the public doctor listing.
func (h *UserHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.userUsecase.GetDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

// Me returns the user the role guard resolved for this session.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not Authenticated")
		return
	}

	response.JSON(w, http.StatusOK, dto.CurrentUserResponse{
		Success: true,
		Users:   converter.UserToResponse(user),
	})
}

// LogoutAdmin clears the admin session cookie.
func (h *UserHandler) LogoutAdmin(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w, entity.RoleAdmin)
	response.JSON(w, http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Admin Logged Out Successfully!",
	})
}

// LogoutPatient clears the patient session cookie.
func (h *UserHandler) LogoutPatient(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w, entity.RolePatient)
	response.JSON(w, http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Patient Logged Out Successfully!",
	})
}

// issueSession mints a token for the user, sets the role-named cookie and
// writes the flat auth response.
func (h *UserHandler) issueSession(w http.ResponseWriter, user *dto.UserResponse, statusCode int, message string) {
	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to issue session")
		return
	}

	h.sessions.SetCookie(w, user.Role, token)
	response.JSON(w, statusCode, dto.AuthResponse{
		Success: true,
		Message: message,
		User:    user,
		Token:   token,
	})
}
