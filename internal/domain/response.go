package domain

type ErrorResponse struct {
	Message string   `json:"message"`
	Code    int      `json:"code"`
	Fields  []string `json:"fields,omitempty"`
}
