package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InsufficientStockResponse cuerpo de error cuando una operación dejaría el
// stock en negativo; lleva disponible y solicitado para diagnóstico.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}
