package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// ListData is the envelope for paginated collection endpoints. The panel's
// tables read items/total/page/limit uniformly across every list view.
type ListData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// SuccessList wraps one page of a collection with its pagination window
func SuccessList(statusCode int, items interface{}, total int64, page, limit int) Response {
	return Success(statusCode, ListData{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
