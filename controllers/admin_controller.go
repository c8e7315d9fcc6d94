package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

type UpdateRoleRequest struct {
	Role         string `json:"role" binding:"required"`
	RestaurantID *uint  `json:"restaurantId"`
}

// PUT /api/admin/users/:id/role
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Admin.UpdateUserRole(
		utils.CurrentUserID(c), utils.CurrentRole(c),
		id, req.Role, req.RestaurantID,
	)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": userView(user)})
}

type BlockRequest struct {
	Reason string `json:"reason"`
}

// POST /api/admin/users/:id/block
func (ac *AdminController) BlockUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Admin.BlockUser(utils.CurrentUserID(c), utils.CurrentRole(c), id, req.Reason); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"blocked": true})
}

// POST /api/admin/users/:id/unblock
func (ac *AdminController) UnblockUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := ac.Admin.UnblockUser(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"blocked": false})
}

type DeleteReviewRequest struct {
	Reason string `json:"reason"`
}

// DELETE /api/admin/reviews/:id
func (ac *AdminController) DeleteReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req DeleteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Admin.DeleteReview(utils.CurrentUserID(c), id, req.Reason); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// GET /api/admin/reviews/deleted?page=&limit=&moderatorId=
func (ac *AdminController) DeletedReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var moderatorID *uint
	if v := c.Query("moderatorId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid moderatorId")
			return
		}
		u := uint(id)
		moderatorID = &u
	}

	pageData, err := ac.Admin.GetDeletedReviews(page, limit, moderatorID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, pageData)
}

// GET /api/admin/reviews/deleted/:id — reveals the audit copy only; the
// live row stays flagged.
func (ac *AdminController) DeletedReview(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	d, err := ac.Admin.GetDeletedReview(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"review": d})
}

// GET /api/admin/users?page=&limit=
func (ac *AdminController) Users(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	pageData, err := ac.Admin.ListUsers(page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, pageData)
}

// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, err := ac.Admin.Dashboard()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}
