package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
	"github.com/kitaezov/FeedbackDeliveryService-sub003/pkg/apperr"
)

func TestUpdateUserRole_AdminPromotesUserToManager(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")

	updated, err := svc.UpdateUserRole(admin.ID, admin.Role, target.ID, entity.RoleManager, &rest.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, updated.Role)
	require.NotNil(t, updated.RestaurantID)
	assert.Equal(t, rest.ID, *updated.RestaurantID)

	var fromDB entity.User
	require.NoError(t, db.First(&fromDB, target.ID).Error)
	assert.Equal(t, entity.RoleManager, fromDB.Role)
	require.NotNil(t, fromDB.RestaurantID)
	assert.Equal(t, rest.ID, *fromDB.RestaurantID)
}

func TestUpdateUserRole_DemotionClearsRestaurant(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	rest := createRestaurant(t, db, "Pasta House")
	manager := createUser(t, db, "Mary", "mary@example.com", entity.RoleManager)
	require.NoError(t, db.Model(manager).Update("restaurant_id", rest.ID).Error)

	updated, err := svc.UpdateUserRole(admin.ID, admin.Role, manager.ID, entity.RoleUser, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, updated.Role)
	assert.Nil(t, updated.RestaurantID)

	var fromDB entity.User
	require.NoError(t, db.First(&fromDB, manager.ID).Error)
	assert.Nil(t, fromDB.RestaurantID)
}

func TestUpdateUserRole_ManagerRequiresRestaurant(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	_, err := svc.UpdateUserRole(admin.ID, admin.Role, target.ID, entity.RoleManager, nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	missing := uint(9999)
	_, err = svc.UpdateUserRole(admin.ID, admin.Role, target.ID, entity.RoleManager, &missing)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	_, err := svc.UpdateUserRole(admin.ID, admin.Role, target.ID, "superuser", nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

// An actor may never touch a target of equal or higher role, whatever
// the requested new role is.
func TestUpdateUserRole_NoTouchingEqualsOrBetters(t *testing.T) {
	cases := []struct {
		actorRole  string
		targetRole string
	}{
		{entity.RoleAdmin, entity.RoleAdmin},
		{entity.RoleAdmin, entity.RoleHeadAdmin},
		{entity.RoleManager, entity.RoleManager},
		{entity.RoleManager, entity.RoleAdmin},
		{entity.RoleManager, entity.RoleHeadAdmin},
		{entity.RoleHeadAdmin, entity.RoleHeadAdmin},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%s_on_%s", tc.actorRole, tc.targetRole), func(t *testing.T) {
			db := testDB(t)
			svc := newTestAdminService(db)

			actor := createUser(t, db, "Actor", fmt.Sprintf("actor%d@example.com", i), tc.actorRole)
			target := createUser(t, db, "Target", fmt.Sprintf("target%d@example.com", i), tc.targetRole)

			_, err := svc.UpdateUserRole(actor.ID, actor.Role, target.ID, entity.RoleUser, nil)
			assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		})
	}
}

// Admins can never mint admins, whoever the target is; only head_admin
// may.
func TestUpdateUserRole_AdminCannotCreateAdmin(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	_, err := svc.UpdateUserRole(admin.ID, admin.Role, target.ID, entity.RoleAdmin, nil)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	head := createUser(t, db, "Root", testHeadAdminEmail, entity.RoleHeadAdmin)
	updated, err := svc.UpdateUserRole(head.ID, head.Role, target.ID, entity.RoleAdmin, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

// A manager may only ever demote to plain user.
func TestUpdateUserRole_ManagerDemotionOnly(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	manager := createUser(t, db, "Mary", "mary@example.com", entity.RoleManager)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")

	for _, newRole := range []string{entity.RoleManager, entity.RoleAdmin, entity.RoleHeadAdmin} {
		_, err := svc.UpdateUserRole(manager.ID, manager.Role, target.ID, newRole, &rest.ID)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), newRole)
	}

	updated, err := svc.UpdateUserRole(manager.ID, manager.Role, target.ID, entity.RoleUser, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, updated.Role)
}

func TestUpdateUserRole_TargetNotFound(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	_, err := svc.UpdateUserRole(admin.ID, admin.Role, 424242, entity.RoleUser, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestBlockUser_Flow(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	require.NoError(t, svc.BlockUser(admin.ID, admin.Role, target.ID, "spam"))

	var fromDB entity.User
	require.NoError(t, db.First(&fromDB, target.ID).Error)
	assert.True(t, fromDB.IsBlocked)
	assert.Equal(t, "spam", fromDB.BlockedReason)

	require.NoError(t, svc.UnblockUser(target.ID))

	require.NoError(t, db.First(&fromDB, target.ID).Error)
	assert.False(t, fromDB.IsBlocked)
	assert.Empty(t, fromDB.BlockedReason)
}

func TestBlockUser_EmptyReason(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	target := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := svc.BlockUser(admin.ID, admin.Role, target.ID, reason)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	var fromDB entity.User
	require.NoError(t, db.First(&fromDB, target.ID).Error)
	assert.False(t, fromDB.IsBlocked)
}

func TestBlockUser_Hierarchy(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	peer := createUser(t, db, "Other Admin", "admin2@example.com", entity.RoleAdmin)

	err := svc.BlockUser(admin.ID, admin.Role, peer.ID, "abuse")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

// The distinguished head-admin account cannot be blocked by anyone else,
// head_admin-level actors included.
func TestBlockUser_HeadAdminProtected(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	head := createUser(t, db, "Root", testHeadAdminEmail, entity.RoleHeadAdmin)
	otherHead := createUser(t, db, "Other Root", "root2@example.com", entity.RoleHeadAdmin)
	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)

	for _, actor := range []*entity.User{otherHead, admin} {
		err := svc.BlockUser(actor.ID, actor.Role, head.ID, "takeover attempt")
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err), actor.Email)
	}

	var fromDB entity.User
	require.NoError(t, db.First(&fromDB, head.ID).Error)
	assert.False(t, fromDB.IsBlocked)
}

func TestDeleteReview_AuditTrail(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)
	reviews := newTestReviewService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	author := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")
	rev := createReview(t, db, author.ID, rest.ID, 1)

	// visible before deletion
	listing, err := reviews.ListAll(20, 0)
	require.NoError(t, err)
	require.Len(t, listing.Items, 1)

	require.NoError(t, svc.DeleteReview(admin.ID, rev.ID, "offensive language"))

	// gone from the public listing
	listing, err = reviews.ListAll(20, 0)
	require.NoError(t, err)
	assert.Empty(t, listing.Items)

	// live row is flagged, not removed
	var live entity.Review
	require.NoError(t, db.First(&live, rev.ID).Error)
	assert.True(t, live.Deleted)

	// exactly one audit copy with the reason and moderator name
	page, err := svc.GetDeletedReviews(1, 20, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	audit := page.Items[0]
	assert.Equal(t, rev.ID, audit.ReviewID)
	assert.Equal(t, author.ID, audit.UserID)
	assert.Equal(t, "offensive language", audit.DeletionReason)
	assert.Equal(t, admin.ID, audit.DeletedBy)
	assert.Equal(t, "Admin", audit.AdminName)
}

func TestDeleteReview_EmptyReason(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	author := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")
	rev := createReview(t, db, author.ID, rest.ID, 1)

	err := svc.DeleteReview(admin.ID, rev.ID, "   ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var live entity.Review
	require.NoError(t, db.First(&live, rev.ID).Error)
	assert.False(t, live.Deleted)

	var auditCount int64
	require.NoError(t, db.Model(&entity.DeletedReview{}).Count(&auditCount).Error)
	assert.Zero(t, auditCount)
}

func TestDeleteReview_MissingAndRepeat(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	author := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")
	rev := createReview(t, db, author.ID, rest.ID, 1)

	err := svc.DeleteReview(admin.ID, 424242, "whatever")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, svc.DeleteReview(admin.ID, rev.ID, "first"))
	err = svc.DeleteReview(admin.ID, rev.ID, "second")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	var auditCount int64
	require.NoError(t, db.Model(&entity.DeletedReview{}).Count(&auditCount).Error)
	assert.EqualValues(t, 1, auditCount)
}

func TestGetDeletedReviews_ModeratorFilter(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	adminA := createUser(t, db, "Admin A", "a@example.com", entity.RoleAdmin)
	adminB := createUser(t, db, "Admin B", "b@example.com", entity.RoleAdmin)
	author := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")

	revA := createReview(t, db, author.ID, rest.ID, 2)
	revB := createReview(t, db, author.ID, rest.ID, 3)

	require.NoError(t, svc.DeleteReview(adminA.ID, revA.ID, "spam"))
	require.NoError(t, svc.DeleteReview(adminB.ID, revB.ID, "off topic"))

	page, err := svc.GetDeletedReviews(1, 20, nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)

	page, err = svc.GetDeletedReviews(1, 20, &adminA.ID)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, revA.ID, page.Items[0].ReviewID)
}

// The "restore" view returns the audit copy but never flips the live row
// back.
func TestGetDeletedReview_ViewOnly(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	admin := createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	author := createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	rest := createRestaurant(t, db, "Pasta House")
	rev := createReview(t, db, author.ID, rest.ID, 2)

	require.NoError(t, svc.DeleteReview(admin.ID, rev.ID, "spam"))

	audit, err := svc.GetDeletedReview(rev.ID)
	require.NoError(t, err)
	assert.Equal(t, "spam", audit.DeletionReason)

	var live entity.Review
	require.NoError(t, db.First(&live, rev.ID).Error)
	assert.True(t, live.Deleted)

	_, err = svc.GetDeletedReview(424242)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDashboardAndUsers(t *testing.T) {
	db := testDB(t)
	svc := newTestAdminService(db)

	createUser(t, db, "Admin", "admin@example.com", entity.RoleAdmin)
	createUser(t, db, "Bob", "bob@example.com", entity.RoleUser)
	createRestaurant(t, db, "Pasta House")

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalRestaurants)

	page, err := svc.ListUsers(1, 20)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)
}
