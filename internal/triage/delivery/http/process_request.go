package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTriageReq binds and validates the triage request body.
func (h *handler) processTriageReq(c *gin.Context) (triageReq, error) {
	var req triageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAvailabilityReq binds and validates the availability request body.
func (h *handler) processAvailabilityReq(c *gin.Context) (availabilityReq, error) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processFindEventReq binds and validates the event search request body.
func (h *handler) processFindEventReq(c *gin.Context) (findEventReq, error) {
	var req findEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRescheduleReq binds and validates the reschedule request body.
func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCancelReq binds and validates the cancel request body.
func (h *handler) processCancelReq(c *gin.Context) (cancelReq, error) {
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
