package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"email-meeting-triage/pkg/response"
)

// Parse godoc
// @Summary     Parse an email for meeting intent
// @Description Extracts contact, company, datetime, intent and confidence from raw email text. Uses the configured language model with heuristic fallback.
// @Tags        Triage
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Email text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Provider auth/quota failure"
// @Router      /api/v1/triage/emails/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.ParseEmail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseEmail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}

// Triage godoc
// @Summary     Run the full triage flow
// @Description Parses the email and, depending on intent, attaches availability suggestions or the best-matching calendar event.
// @Tags        Triage
// @Accept      json
// @Produce     json
// @Param       body body triageReq true "Email text"
// @Success     200  {object} triageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/triage/emails [POST]
func (h *handler) Triage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTriageReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.Triage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Triage: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTriageResp(output))
}

// Availability godoc
// @Summary     Suggest open meeting slots
// @Description Reconciles the calendar's busy intervals for a date against the business-hours grid. A free preferred time is surfaced first.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       body body availabilityReq true "Target date and preferred time"
// @Success     200  {object} model.AvailabilityResult
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Calendar not configured"
// @Router      /api/v1/triage/availability [POST]
func (h *handler) Availability(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAvailabilityReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	result, err := h.uc.SuggestAvailability(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestAvailability: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, result)
}

// FindEvent godoc
// @Summary     Find a calendar event by free text
// @Description Scores candidate events by title, attendee overlap and recency to locate a reschedule/cancel target.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body findEventReq true "Query and participants"
// @Success     200  {object} model.EventSearchResult
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/triage/events/search [POST]
func (h *handler) FindEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindEventReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	result, err := h.uc.FindEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FindEvent: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, result)
}

// Schedule godoc
// @Summary     Schedule a meeting
// @Description Creates a calendar event at the given date and time and syncs the contact to the CRM.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Meeting details"
// @Success     200  {object} triage.ScheduleOutput
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/triage/meetings [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.ScheduleMeeting(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ScheduleMeeting: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Reschedule godoc
// @Summary     Reschedule a meeting
// @Description Finds the best-matching event for the query and moves it to the new start time.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body rescheduleReq true "Query and new time"
// @Success     200  {object} triage.ScheduleOutput
// @Failure     404  {object} response.Resp "No event matched"
// @Router      /api/v1/triage/meetings/reschedule [POST]
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.RescheduleMeeting(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RescheduleMeeting: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Cancel godoc
// @Summary     Cancel a meeting
// @Description Finds the best-matching event for the query and deletes it.
// @Tags        Meetings
// @Accept      json
// @Produce     json
// @Param       body body cancelReq true "Query"
// @Success     200  {object} triage.CancelOutput
// @Failure     404  {object} response.Resp "No event matched"
// @Router      /api/v1/triage/meetings/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCancelReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.CancelMeeting(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CancelMeeting: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

func (h *handler) respondError(c *gin.Context, err error) {
	status := mapErrorStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c)
		return
	}
	response.Error(c, status, err)
}
