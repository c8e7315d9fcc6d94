package services

import (
	"github.com/kitaezov/FeedbackDeliveryService-sub003/entity"
)

// Roles form a total order. Unknown roles rank below everyone.
var roleLevels = map[string]int{
	entity.RoleHeadAdmin: 100,
	entity.RoleAdmin:     80,
	entity.RoleManager:   50,
	entity.RoleUser:      10,
}

func RoleLevel(role string) int {
	return roleLevels[role]
}

func ValidRole(role string) bool {
	_, ok := roleLevels[role]
	return ok
}

// CanModerate reports whether the actor may act on the target at all.
// Acting on an equal or higher role is never allowed.
func CanModerate(actorRole, targetRole string) bool {
	return RoleLevel(targetRole) < RoleLevel(actorRole)
}

// StaffRole reports whether the role handles other users' content.
func StaffRole(role string) bool {
	return RoleLevel(role) >= roleLevels[entity.RoleManager]
}
