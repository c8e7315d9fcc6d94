package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/repository"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/services"
)

// asUser stands in for the auth middleware.
func asUser(id uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", id)
		c.Set("role", role)
		c.Next()
	}
}

func newAdminRouter(t *testing.T, db *gorm.DB, actorID uint, actorRole string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewAdminService(
		db,
		repository.NewUserRepository(db),
		repository.NewReviewRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewSupportRepository(db),
		"root@example.com",
	)
	ctrl := NewAdminController(svc)

	r := gin.New()
	r.Use(asUser(actorID, actorRole))
	r.PUT("/api/admin/users/:id/role", ctrl.UpdateUserRole)
	r.POST("/api/admin/users/:id/block", ctrl.BlockUser)
	r.DELETE("/api/admin/reviews/:id", ctrl.DeleteReview)
	r.GET("/api/admin/reviews/deleted", ctrl.DeletedReviews)
	return r
}

func mkUser(t *testing.T, db *gorm.DB, name, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBlockHandler_StatusMapping(t *testing.T) {
	db := testDB(t)

	admin := mkUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := mkUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	peer := mkUser(t, db, "Peer", "peer@example.com", entity.RoleAdmin)

	r := newAdminRouter(t, db, admin.ID, admin.Role)

	// empty reason -> 400
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/block", target.ID), `{"reason":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// equal role -> 403
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/block", peer.ID), `{"reason":"abuse"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// missing target -> 404
	w = doJSON(t, r, http.MethodPost, "/api/admin/users/424242/block", `{"reason":"abuse"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// success -> 200
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/admin/users/%d/block", target.ID), `{"reason":"spam"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReviewHandler_EndToEnd(t *testing.T) {
	db := testDB(t)

	admin := mkUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	author := mkUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	rest := entity.Restaurant{Name: "Pasta House", Slug: "pasta-house", IsActive: true}
	require.NoError(t, db.Create(&rest).Error)
	rev := entity.Review{UserID: author.ID, RestaurantID: rest.ID, RestaurantName: rest.Name, Rating: 1}
	require.NoError(t, db.Create(&rev).Error)

	r := newAdminRouter(t, db, admin.ID, admin.Role)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/reviews/%d", rev.ID), `{"reason":"offensive language"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// second delete of the same review -> 409
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/reviews/%d", rev.ID), `{"reason":"again"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/reviews/deleted", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Items []entity.DeletedReview `json:"items"`
		Total int64                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, rev.ID, page.Items[0].ReviewID)
	assert.Equal(t, "offensive language", page.Items[0].DeletionReason)
}

func TestUpdateRoleHandler_Forbidden(t *testing.T) {
	db := testDB(t)

	manager := mkUser(t, db, "Mary", "mary@example.com", entity.RoleManager)
	target := mkUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	r := newAdminRouter(t, db, manager.ID, manager.Role)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", target.ID), `{"role":"admin"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", target.ID), `{"role":"user"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
