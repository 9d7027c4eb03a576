package dto

// Pagination metadatos de página en listados (estilo scroll infinito del cliente).
type Pagination struct {
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	HasMore     bool `json:"hasMore"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
