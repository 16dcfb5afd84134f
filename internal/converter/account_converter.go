package converter

import (
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
)

func AccountToResponse(account *entity.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:       account.ID,
		Name:     account.Name,
		Username: account.Username,
		Role:     string(account.Role),
	}
}
