// Package utils provides HTTP response helpers shared by the transport
// layer.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-events-rest/models"
)

// ContentTypeJSON is the media type of every JSON body the server writes.
const ContentTypeJSON = "application/json; charset=UTF-8"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to [ContentTypeJSON] and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, events, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the error envelope
//
//	{"code": code, "message": message, "data": {"status": statusCode}}
//
// with statusCode as the HTTP status.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) (int, error) {
	return WriteJSON(w, models.ErrorResponse{
		Code:    code,
		Message: message,
		Data:    models.ErrorData{Status: statusCode},
	}, statusCode)
}
