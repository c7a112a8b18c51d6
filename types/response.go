// Package types holds the shared request/response shapes exchanged with the
// web client, separate from the persistence models.
package types

// ApiResponse is the envelope every endpoint answers with. Token is only set
// by the auth endpoints.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
