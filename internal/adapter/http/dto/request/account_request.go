package request

import (
	"strings"

	"plaiz_studio/internal/usecase"
)

type BankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountName   string `json:"account_name" binding:"required"`
	RecipientCode string `json:"recipient_code"`
}

func (r BankAccountRequest) ToInput() usecase.BankAccountInput {
	return usecase.BankAccountInput{
		BankName:      strings.TrimSpace(r.BankName),
		AccountNumber: strings.ReplaceAll(strings.TrimSpace(r.AccountNumber), " ", ""),
		AccountName:   strings.TrimSpace(r.AccountName),
		RecipientCode: strings.TrimSpace(r.RecipientCode),
	}
}

// PortfolioForm is the multipart form of a portfolio upload. The image comes
// either as the "image" file part or as image_url.
type PortfolioForm struct {
	Title     string `form:"title" binding:"required"`
	Category  string `form:"category" binding:"required"`
	ProjectID string `form:"project_id"`
	ImageURL  string `form:"image_url"`
}
