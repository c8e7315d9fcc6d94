package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(n *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: n}
}

// GET /api/notifications?limit=&offset=
func (nc *NotificationController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := nc.Notifications.ListForUser(utils.CurrentUserID(c), limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := nc.Notifications.MarkRead(id, utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}
