package auth

import "blogapi/internal/model"

// Identity is the authenticated caller extracted from a verified token and
// passed explicitly into handlers and services.
type Identity struct {
	ID   uint
	Role string
}

// CanAccess reports whether the caller may read or mutate the target user.
// Admins may act on anyone; everyone else only on themselves.
func CanAccess(caller Identity, targetUserID uint) bool {
	return caller.Role == model.RoleAdmin || caller.ID == targetUserID
}
