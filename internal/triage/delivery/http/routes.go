package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	emails := rg.Group("/emails")
	{
		emails.POST("", h.Triage)
		emails.POST("/parse", h.Parse)
	}

	rg.POST("/availability", h.Availability)
	rg.POST("/events/search", h.FindEvent)

	meetings := rg.Group("/meetings")
	{
		meetings.POST("", h.Schedule)
		meetings.POST("/reschedule", h.Reschedule)
		meetings.POST("/cancel", h.Cancel)
	}
}
