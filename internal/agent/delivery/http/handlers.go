package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Query godoc
// @Summary     Process a natural-language query
// @Description Classifies the query into an intent, runs the matching tool and returns rendered text. Domain failures (unknown product, cancelled order, bad expression) are part of the conversation and come back 200 with status "error".
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Query"
// @Success     200 {object} queryResp
// @Failure     400 {object} queryResp "Malformed request body"
// @Router      /api/v1/assistant/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.Query: bad request: %v", err)
		c.JSON(http.StatusBadRequest, queryResp{
			Response: "request body must be JSON with a non-empty \"query\" field",
			Status:   statusError,
		})
		return
	}

	output := h.uc.ProcessQuery(ctx, req.Query)
	c.JSON(http.StatusOK, h.newQueryResp(output))
}
