package handler

import "classroom/internal/auth/models"

type signUpRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic,omitempty"`
	Role       string `json:"role"`
	Password   string `json:"password"`
}

func (r signUpRequest) toModel() models.RegisterRequest {
	return models.RegisterRequest{
		Email:      r.Email,
		Name:       r.Name,
		Surname:    r.Surname,
		Patronymic: r.Patronymic,
		Role:       models.Role(r.Role),
		Password:   r.Password,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
