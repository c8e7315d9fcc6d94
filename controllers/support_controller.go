package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

type SupportController struct {
	Support *services.SupportService
}

func NewSupportController(support *services.SupportService) *SupportController {
	return &SupportController{Support: support}
}

type CreateTicketRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Priority string `json:"priority"`
}

// POST /api/support/tickets
func (sc *SupportController) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ticket, err := sc.Support.CreateTicket(utils.CurrentUserID(c), req.Subject, req.Body, req.Priority)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"ticket": ticket})
}

// GET /api/support/tickets?status=
func (sc *SupportController) ListTickets(c *gin.Context) {
	tickets, err := sc.Support.ListTickets(utils.CurrentUserID(c), utils.CurrentRole(c), c.Query("status"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": tickets})
}

// GET /api/support/tickets/:id
func (sc *SupportController) GetTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ticket, err := sc.Support.GetTicket(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ticket": ticket})
}

type TicketMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// POST /api/support/tickets/:id/messages
func (sc *SupportController) AddMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req TicketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := sc.Support.AddMessage(utils.CurrentUserID(c), utils.CurrentRole(c), id, req.Body)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"message": msg})
}

type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/support/tickets/:id/status (staff)
func (sc *SupportController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := sc.Support.UpdateStatus(id, req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
