package handler

type createJobRequest struct {
	Descripcion string `json:"descripcion" validate:"required,min=3"`
	IDClientes  int64  `json:"id_clientes" validate:"required"`
}

type updateJobDescriptionRequest struct {
	Descripcion string `json:"descripcion" validate:"required,min=3"`
}

// The finished/paid payloads are string-typed by contract: only the literal
// strings "0" and "1" are accepted. A JSON number or boolean fails the bind
// and is rejected like any other malformed value.
type setFinishedRequest struct {
	Finalizado string `json:"finalizado" validate:"required,oneof=0 1"`
}

type setPaidRequest struct {
	Pagado string `json:"pagado" validate:"required,oneof=0 1"`
}

// jobResponse mirrors a trabajos row as the legacy API exposed it, with
// finalizado/pagado as 0/1 integers.
type jobResponse struct {
	ID          int64  `json:"id"`
	Descripcion string `json:"descripcion"`
	IDClientes  int64  `json:"id_clientes"`
	Finalizado  int    `json:"finalizado"`
	Pagado      int    `json:"pagado"`
}
