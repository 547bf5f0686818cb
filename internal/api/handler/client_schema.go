package handler

import "github.com/gestionpagos/billing-system/internal/core/domain"

// errorResponse is the legacy error envelope rendered on all failures.
type errorResponse struct {
	Error string `json:"Error"`
}

type clientRequest struct {
	Nombre string `json:"nombre" validate:"required,min=3"`
}

// clientResponse mirrors a clientes row as the legacy API exposed it.
type clientResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{ID: c.ID, Nombre: c.Name}
}

func toClientResponses(clients []domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, toClientResponse(&clients[i]))
	}
	return out
}
