package converter

import (
	"enfermeria-api/internal/delivery/dto"
	"enfermeria-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the Role projection when it is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Nombre:    user.Nombre,
		Apellido:  user.Apellido,
		Email:     user.Email,
		Activo:    user.Activo,
		Ultimavez: user.Ultimavez,
		ImagenURL: user.ImagenURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Role.ID != 0 {
		response.Role = RoleToResponse(&user.Role)
	}

	return response
}

func UsersToResponses(users []entity.User) []*dto.UserResponse {
	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserToResponse(&users[i]))
	}
	return responses
}

func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          role.ID,
		Nombre:      role.Nombre,
		Descripcion: role.Descripcion,
	}
}

func RolesToResponses(roles []entity.Role) []*dto.RoleResponse {
	responses := make([]*dto.RoleResponse, 0, len(roles))
	for i := range roles {
		responses = append(responses, RoleToResponse(&roles[i]))
	}
	return responses
}
