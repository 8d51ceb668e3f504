package http

import (
	"github.com/gin-gonic/gin"
)

// processPrioritizeReq binds the legacy prioritize body.
func (h *handler) processPrioritizeReq(c *gin.Context) (prioritizeReq, error) {
	var req prioritizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreatePlanReq binds and validates the plan request body.
func (h *handler) processCreatePlanReq(c *gin.Context) (createPlanReq, error) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
