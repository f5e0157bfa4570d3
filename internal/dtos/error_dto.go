package dtos

import "time"

type ErrorResponse struct {
	Message   string            `json:"message"`
	Status    int               `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}
