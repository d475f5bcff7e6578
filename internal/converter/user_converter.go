package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO. The password
// hash never crosses this boundary; the avatar block is attached for doctors
// only.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Phone:            user.Phone,
		AadharNumber:     user.AadharNumber,
		Gender:           user.Gender,
		DateOfBirth:      user.DateOfBirth.Format("2006-01-02"),
		Role:             user.Role,
		DoctorDepartment: user.DoctorDepartment,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}

	if user.IsDoctor() && user.AvatarURL != "" {
		response.DocAvatar = &dto.AvatarResponse{
			PublicID: user.AvatarPublicID,
			URL:      user.AvatarURL,
		}
	}

	return response
}

// UsersToResponses converts a slice of users, keeping order.
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
