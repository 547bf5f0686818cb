package handler

import "github.com/gestionpagos/billing-system/internal/core/domain"

func boolToBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// bitFlag parses the legacy "0"/"1" string representation of a boolean.
func bitFlag(s string) (bool, bool) {
	switch s {
	case "0":
		return false, true
	case "1":
		return true, true
	}
	return false, false
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		Descripcion: j.Description,
		IDClientes:  j.ClientID,
		Finalizado:  boolToBit(j.Finished),
		Pagado:      boolToBit(j.Paid),
	}
}

func toJobResponses(jobs []domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}
