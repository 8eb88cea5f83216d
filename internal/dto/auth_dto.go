package dto

import (
	"time"

	"attendra/internal/entity"
)

type SignupRequest struct {
	FullName        string  `json:"full_name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	Role            string  `json:"role" validate:"required,oneof=student teacher parent admin"`
	LinkedStudentID *string `json:"linked_student_id" validate:"omitempty,uuid"`
	YearLevel       string  `json:"year_level" validate:"omitempty"`
	Section         string  `json:"section" validate:"omitempty"`
	Courses         string  `json:"courses" validate:"omitempty"`
	ContactNumber   *string `json:"contact_number" validate:"omitempty"`
	Gender          *string `json:"gender" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	LinkedStudentID *string   `json:"linked_student_id,omitempty"`
	YearLevel       string    `json:"year_level,omitempty"`
	Section         string    `json:"section,omitempty"`
	Courses         string    `json:"courses,omitempty"`
	ContactNumber   *string   `json:"contact_number,omitempty"`
	Gender          *string   `json:"gender,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	response := UserResponse{
		ID:            user.ID.String(),
		FullName:      user.FullName,
		Email:         user.Email,
		Role:          string(user.Role),
		YearLevel:     user.YearLevel,
		Section:       user.Section,
		Courses:       user.Courses,
		ContactNumber: user.ContactNumber,
		Gender:        user.Gender,
		CreatedAt:     user.CreatedAt,
	}
	if user.LinkedStudentID != nil {
		linked := user.LinkedStudentID.String()
		response.LinkedStudentID = &linked
	}
	return response
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}
