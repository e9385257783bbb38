package http

import (
	"errors"
	"strings"

	"storefront-assistant/internal/agent/orchestrator"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// --- Request DTOs ---

type queryReq struct {
	Query string `json:"query" binding:"required"`
}

func (r queryReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errors.New("query must not be blank")
	}
	return nil
}

// --- Response DTOs ---

type queryResp struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

func (h *handler) newQueryResp(out orchestrator.Output) queryResp {
	status := statusSuccess
	if !out.Success {
		status = statusError
	}
	return queryResp{
		Response: out.Response,
		Status:   status,
	}
}
