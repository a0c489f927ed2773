package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	RequestIDCtxKey ContextKey = "requestID"
	MyInfoCtx       ContextKey = "myInfo"
	UserInfoCtx     ContextKey = "userInfo"
	ProgramCtx      ContextKey = "program"
	EventCtx        ContextKey = "event"
	FormCtx         ContextKey = "form"
)
