package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// taskRequest is the payload for both create and update. Title must be
// non-blank; a whitespace-only title fails identically to a missing one.
type taskRequest struct {
	Title       string `json:"title"       validate:"notblank"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type messageResponse struct {
	Message string `json:"message"`
}
