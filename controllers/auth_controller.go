package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name string `json:"name" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"role":         u.Role,
		"restaurantId": u.RestaurantID,
		"isBlocked":    u.IsBlocked,
	}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"user": userView(user)})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userView(user),
	})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": userView(user)})
}

// PATCH /api/auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": userView(user)})
}

// POST /api/auth/me/avatar (multipart "avatar")
func (a *AuthController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		resp.BadRequest(c, "avatar file is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		resp.Error(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		resp.Error(c, err)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if err := a.Auth.SaveAvatar(utils.CurrentUserID(c), data, contentType); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"uploaded": true})
}

// GET /api/auth/me/avatar
func (a *AuthController) GetAvatar(c *gin.Context) {
	data, contentType, err := a.Auth.GetAvatar(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
