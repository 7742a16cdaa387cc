package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListFilters filtros de listado comunes (query params). Un valor vacío o
// "all" es un no-op: el predicado correspondiente acepta todo.
type ListFilters struct {
	Search     string `query:"search"`
	Category   string `query:"category"`
	Status     string `query:"status"`
	EntityType string `query:"entity_type"`
	Type       string `query:"type"`
	Range      string `query:"range"` // today | 7d | 30d
}
