package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/delivery/http/middleware"
	"enfermeria-api/internal/usecase"
	"enfermeria-api/pkg/response"
	"enfermeria-api/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// GetAllUsers handles listing staff accounts
// @Summary List users
// @Description List all staff accounts (administrators only)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	users, err := h.userUsecase.GetAllUsers(r.Context(), actor)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		internalError(w, "Failed to get users", err)
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// GetUser handles getting a single staff account
// @Summary Get user
// @Description Get one staff account by id (administrators only)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), actor, id)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			internalError(w, "Failed to get user", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// CreateUser handles creating a staff account
// @Summary Create user
// @Description Create a staff account (administrators only)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), actor, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrRoleNotFound:
			response.Error(w, http.StatusBadRequest, "Role not found", nil)
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists", "email")
		default:
			internalError(w, "Failed to create user", err)
		}
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", user)
}

// UpdateUser handles updating a staff account
// @Summary Update user
// @Description Update a staff account (administrators only, peer administrators protected)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), actor, id, &req)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrRoleNotFound:
			response.Error(w, http.StatusBadRequest, "Role not found", nil)
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already exists", "email")
		default:
			internalError(w, "Failed to update user", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles deleting a staff account
// @Summary Delete user
// @Description Delete a staff account (administrators only, self-deletion rejected)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), actor, id); err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			internalError(w, "Failed to delete user", err)
		}
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

// GetAllRoles handles listing the assignable roles
// @Summary List roles
// @Description List all roles
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /users/roles [get]
func (h *UserHandler) GetAllRoles(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActorFromContext(r.Context())

	roles, err := h.userUsecase.GetAllRoles(r.Context(), actor)
	if err != nil {
		if handleCommonErrors(w, err) {
			return
		}
		internalError(w, "Failed to get roles", err)
		return
	}

	response.Success(w, http.StatusOK, "Roles retrieved successfully", roles)
}
