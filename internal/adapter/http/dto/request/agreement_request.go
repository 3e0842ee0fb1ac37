package request

import (
	"strings"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase"
)

// ProposePriceRequest carries the price in naira; it is stored in kobo.
type ProposePriceRequest struct {
	Amount       float64 `json:"amount"`
	Deliverables string  `json:"deliverables"`
	Timeline     string  `json:"timeline"`
}

func (r ProposePriceRequest) ToInput() usecase.ProposalInput {
	return usecase.ProposalInput{
		Amount:       entities.NairaToKobo(r.Amount),
		Deliverables: strings.TrimSpace(r.Deliverables),
		Timeline:     strings.TrimSpace(r.Timeline),
	}
}
