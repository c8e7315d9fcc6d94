package controllers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/resp"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/utils"
)

type ReviewController struct {
	Reviews   *services.ReviewService
	UploadDir string
}

func NewReviewController(reviews *services.ReviewService, uploadDir string) *ReviewController {
	return &ReviewController{Reviews: reviews, UploadDir: uploadDir}
}

type CreateReviewRequest struct {
	RestaurantID uint   `json:"restaurantId" form:"restaurantId" binding:"required"`
	Rating       int    `json:"rating" form:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment" form:"comment"`

	FoodRating        int `json:"foodRating" form:"foodRating" binding:"omitempty,min=1,max=5"`
	ServiceRating     int `json:"serviceRating" form:"serviceRating" binding:"omitempty,min=1,max=5"`
	AtmosphereRating  int `json:"atmosphereRating" form:"atmosphereRating" binding:"omitempty,min=1,max=5"`
	PriceRating       int `json:"priceRating" form:"priceRating" binding:"omitempty,min=1,max=5"`
	CleanlinessRating int `json:"cleanlinessRating" form:"cleanlinessRating" binding:"omitempty,min=1,max=5"`

	DeliverySpeedRating   int `json:"deliverySpeedRating" form:"deliverySpeedRating" binding:"omitempty,min=1,max=5"`
	DeliveryQualityRating int `json:"deliveryQualityRating" form:"deliveryQualityRating" binding:"omitempty,min=1,max=5"`
}

// POST /api/reviews — JSON body, or multipart with "photos" files.
func (rc *ReviewController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateReviewRequest
	var photoPaths []string

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBind(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		form, err := c.MultipartForm()
		if err == nil {
			for _, file := range form.File["photos"] {
				name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
				dst := filepath.Join(rc.UploadDir, name)
				if err := c.SaveUploadedFile(file, dst); err != nil {
					resp.Error(c, err)
					return
				}
				photoPaths = append(photoPaths, "/uploads/"+name)
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}

	review, err := rc.Reviews.Create(uid, services.CreateReviewInput{
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Comment:      req.Comment,

		FoodRating:        req.FoodRating,
		ServiceRating:     req.ServiceRating,
		AtmosphereRating:  req.AtmosphereRating,
		PriceRating:       req.PriceRating,
		CleanlinessRating: req.CleanlinessRating,

		DeliverySpeedRating:   req.DeliverySpeedRating,
		DeliveryQualityRating: req.DeliveryQualityRating,

		PhotoPaths: photoPaths,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review})
}

// GET /api/reviews?limit=&offset=
func (rc *ReviewController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	listing, err := rc.Reviews.ListAll(limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, listing)
}

// GET /api/restaurants/:id/reviews?limit=&offset=
func (rc *ReviewController) ListForRestaurant(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	listing, err := rc.Reviews.ListForRestaurant(id, limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, listing)
}

// GET /api/profile/reviews
func (rc *ReviewController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	listing, err := rc.Reviews.ListForUser(utils.CurrentUserID(c), limit, offset)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, listing)
}

type VoteRequest struct {
	ReviewID uint   `json:"reviewId" binding:"required"`
	VoteType string `json:"voteType" binding:"required"`
}

// POST /api/reviews/vote — a repeat vote answers recorded=false, not an
// error.
func (rc *ReviewController) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	recorded, err := rc.Reviews.Vote(req.ReviewID, utils.CurrentUserID(c), req.VoteType)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"recorded": recorded})
}

type RespondRequest struct {
	Response string `json:"response" binding:"required"`
}

// POST /api/reviews/:id/response
func (rc *ReviewController) Respond(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review, err := rc.Reviews.Respond(utils.CurrentUserID(c), utils.CurrentRole(c), id, req.Response)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"review": review})
}
