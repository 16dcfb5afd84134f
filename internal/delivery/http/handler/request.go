package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-clinic-management/pkg/response"
	"go-clinic-management/pkg/validator"

	"github.com/gorilla/mux"
)

var errInvalidID = errors.New("invalid id")

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// decodeAndValidate reads the JSON body into req and validates it. It writes
// the 400 response itself and returns false when the request is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if fields := v.FormatDecodeError(err); fields != nil {
			response.ValidationError(w, fields)
			return false
		}
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := v.Validate(req); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}

	return true
}
