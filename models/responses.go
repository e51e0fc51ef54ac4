package models

// ErrorResponse is the body of every non-2xx answer of the REST API.
//
//	{"code": "events_rest_no_event", "message": "No event with specified id found", "data": {"status": 404}}
type ErrorResponse struct {
	// Code is a stable machine-readable error identifier.
	Code string `json:"code"`

	// Message is a human-readable explanation.
	Message string `json:"message"`

	Data ErrorData `json:"data"`
}

// ErrorData carries the HTTP status duplicated inside the error body.
type ErrorData struct {
	Status int `json:"status"`
}
