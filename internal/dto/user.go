package dto

import (
	"github.com/avasseur/portfolio-builder/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID              uint64 `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	IsEmailVerified bool   `json:"is_email_verified"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		IsEmailVerified: user.IsEmailVerified,
	}
}

// SearchResultDTO is one row of a public portfolio search.
type SearchResultDTO struct {
	PublicURL string `json:"public_url"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
}

// ToSearchResultDTO converts a matched portfolio to a search row.
func ToSearchResultDTO(portfolio models.Portfolio) SearchResultDTO {
	return SearchResultDTO{
		PublicURL: portfolio.PublicURL,
		FullName:  portfolio.User.FullName(),
		Username:  portfolio.User.Username,
		Bio:       portfolio.Bio,
		Location:  portfolio.Location,
	}
}
