package handler

import (
	"encoding/json"
	"net/http"

	"hms-backend/pkg/response"
	"hms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// pathID returns the {id} route variable. Ids that are not UUIDs cannot name
// a record, so they are answered with 404 like any unknown id.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		response.NotFound(w, "Not found")
		return "", false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into req. Missing required fields are
// reported as "Missing fields", other rule violations as "Validation failed".
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := decodeJSON(r, req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := v.Validate(req); err != nil {
		message := "Validation failed"
		if v.HasRequiredFailure(err) {
			message = "Missing fields"
		}
		response.ValidationError(w, message, v.FormatValidationErrors(err))
		return false
	}
	return true
}

func decodeJSON(r *http.Request, req interface{}) error {
	return json.NewDecoder(r.Body).Decode(req)
}
