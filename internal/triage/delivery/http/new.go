package http

import (
	"github.com/gin-gonic/gin"

	"email-meeting-triage/internal/triage"
	"email-meeting-triage/pkg/log"
)

// Handler is the public interface for the triage HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Triage(c *gin.Context)
	Availability(c *gin.Context)
	FindEvent(c *gin.Context)
	Schedule(c *gin.Context)
	Reschedule(c *gin.Context)
	Cancel(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc triage.UseCase
}

// New creates a new HTTP handler for the triage domain.
func New(l log.Logger, uc triage.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
