package handler

import "github.com/mywallet/wallet-system/internal/api/sanitize"

// createRecordRequest binds value into an int64 on purpose: floats and
// strings fail JSON binding (400), `required` rejects the zero value, and
// min=1 rejects negatives.
type createRecordRequest struct {
	Value       int64  `json:"value"       validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
}

func (r *createRecordRequest) sanitize() {
	r.Description = sanitize.Strip(r.Description)
}
