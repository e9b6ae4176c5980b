package response

import "github.com/baileyhood/smashbash/internal/domain"

type LoginResponse struct {
	Token   string         `json:"token"`
	Account domain.Account `json:"account"`
}
