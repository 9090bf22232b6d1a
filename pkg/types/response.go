package types

type SuccessEnvelope struct {
	Data any       `json:"data"`
	Page *PageInfo `json:"page,omitempty"`
}

// PageInfo accompanies list responses that were cut with a cursor.
type PageInfo struct {
	Total      int    `json:"total"`
	Limit      int    `json:"limit"`
	NextCursor string `json:"next_cursor,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
	// Data carries state that is still meaningful alongside the error, such as the unchanged
	// cart after a refused add.
	Data any `json:"data,omitempty"`
}
