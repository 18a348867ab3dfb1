package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	KeyRequestID CtxKey = "RequestID"
)

// Roles allowed to search talents
const (
	RoleCompany = "company"
	RoleAdmin   = "admin"
)
