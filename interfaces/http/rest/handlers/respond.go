package handlers

import (
	"net/http"
	"strings"

	"designaudit/pkg/common"
	pkgerrors "designaudit/pkg/errors"
)

// respondJSON wraps a successful payload in the standard response envelope.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	common.RespondJSON(w, status, data)
}

// respondError maps an application error onto an HTTP status and the
// standard error envelope. Unknown errors become a generic 500 so internal
// detail never leaks to callers.
func respondError(w http.ResponseWriter, err error) {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
		return
	}

	if isValidationFailure(err) {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "Internal server error")
}

func isValidationFailure(err error) bool {
	// The bus and the handlers prefix validation failures consistently.
	return err != nil &&
		(strings.Contains(err.Error(), "query validation failed") ||
			strings.Contains(err.Error(), "invalid query"))
}
