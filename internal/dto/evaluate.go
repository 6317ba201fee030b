package dto

import "github.com/google/uuid"

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse carries one evaluation outcome. Result is omitted
// when the value is not finite; JSON has no Inf or NaN, Formatted
// still shows the rendering.
type EvaluateResponse struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     *float64  `json:"result,omitempty"`
	Formatted  string    `json:"formatted"`
}
