package service

import "time"

// Cache keys for the list endpoints. Every mutation on an entity must
// invalidate its key; client deletion also touches jobs (cascade).
const (
	cacheKeyClients = "cache:clientes"
	cacheKeyJobs    = "cache:trabajos"

	listCacheTTL = 30 * time.Second
)
