package handler

import (
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// toSweetResponse maps the domain entity to the transport representation.
func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toListSweetsResponse(sweets []*domain.Sweet) listSweetsResponse {
	data := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		data = append(data, toSweetResponse(s))
	}
	return listSweetsResponse{Data: data}
}

func toListMovementsResponse(sweetID string, movements []*domain.StockMovement) listMovementsResponse {
	data := make([]movementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, movementResponse{
			Kind:      string(m.Kind),
			Amount:    m.Amount,
			Remaining: m.Remaining,
			Actor:     m.Actor,
			Timestamp: m.Timestamp,
		})
	}
	return listMovementsResponse{SweetID: sweetID, Data: data}
}

// toUpdateInput maps the partial-edit request onto the service DTO.
func toUpdateInput(req updateSweetRequest) ports.UpdateSweetInput {
	return ports.UpdateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
}
