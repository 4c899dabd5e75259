package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// User-facing messages.
const (
	MsgLoadFailed = "데이터를 가져오는 중 오류가 발생했습니다."
	MsgNoData     = "데이터베이스에 데이터가 없습니다."
)

// Status values of page responses.
const (
	StatusOK     = "ok"
	StatusNoData = "no_data"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondLoadFailed logs err and answers with the single user-visible load error.
func respondLoadFailed(c *gin.Context, err error, page string) {
	log.Error().Err(err).Str("page", page).Msg("handler: failed to load data")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgLoadFailed})
}
