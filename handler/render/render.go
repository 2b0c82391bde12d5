package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"hydro/core"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render v as data
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, dataResponse{Data: v})
}

// List render one page of v
func List(w http.ResponseWriter, v interface{}, pagination Pagination) {
	write(w, http.StatusOK, listResponse{Data: v, Pagination: pagination})
}

// Error write error, codes of core.ErrorCode are kept
func Error(w http.ResponseWriter, statusCode int, err error) {
	resp := errorResponse{
		Code: int(core.ErrUnknown),
		Msg:  http.StatusText(statusCode),
	}

	var code core.ErrorCode
	if errors.As(err, &code) {
		resp.Code = int(code)
	}

	if ResponseErrorMessageAsHint {
		resp.Hint = err.Error()
	}

	write(w, statusCode, resp)
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, err)
}

// NotFound not found error
func NotFound(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, err)
}

func write(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}
