// Copyright (c) 2026 Boardbuddy. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// UserRole is the value of the users.member role column, carried in the token's
// "rol" claim. Gathering access never depends on it.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)
