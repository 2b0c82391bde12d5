package render

import (
	"os"
	"strconv"
)

// ResponseErrorMessageAsHint expose internal error messages as hint
var ResponseErrorMessageAsHint bool

func init() {
	ResponseErrorMessageAsHint, _ = strconv.ParseBool(os.Getenv("HYDRO_ERROR_HINT"))
}

// Pagination cursor of a list, pass NextCursor as offset to get the next page
type Pagination struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasNext    bool   `json:"has_next"`
}

type dataResponse struct {
	Data interface{} `json:"data,omitempty"`
}

type listResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}
