package dto

import (
	"time"

	"account_backend/internal/feature/users/domain/entity"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	ResponseCode bool   `json:"response_code"`
	ResponseDesc string `json:"response_desc"`
	Data         any    `json:"data,omitempty"`
}

// Success wraps a payload in the success envelope.
func Success(data any) Envelope {
	return Envelope{ResponseCode: true, ResponseDesc: "SUCCESS", Data: data}
}

// Failure builds the failure envelope with the conventional "FAILED : " prefix.
func Failure(reason string) Envelope {
	return Envelope{ResponseCode: false, ResponseDesc: "FAILED : " + reason}
}

// UserItem is the outbound projection of a user.
// It deliberately has no password field.
type UserItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserItem converts a domain user into its outbound projection.
func NewUserItem(u entity.User) UserItem {
	return UserItem{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserList converts a slice of domain users, preserving order.
func NewUserList(users []entity.User) []UserItem {
	out := make([]UserItem, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserItem(u))
	}
	return out
}

// TokenData is the payload of a successful login response.
type TokenData struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}
