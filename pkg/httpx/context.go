package httpx

type ctxKey string

const (
	// CtxKeyUserID holds the authenticated user's ID as a string.
	CtxKeyUserID ctxKey = "user_id"
	// CtxKeyUser holds the full resolved identity (domain.User).
	CtxKeyUser ctxKey = "user"
)
