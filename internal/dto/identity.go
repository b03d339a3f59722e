package dto

import "github.com/pixelforge/studio-console/internal/models"

// IdentityDTO represents the session identity in API responses
type IdentityDTO struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// ToIdentityDTO converts an Identity to IdentityDTO
func ToIdentityDTO(identity models.Identity) IdentityDTO {
	return IdentityDTO{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role,
	}
}
