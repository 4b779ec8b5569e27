package serverutils

import (
	"afaq-chatbot-be/internal/constant"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionID returns the guest id carried by the request cookie, or "" when
// the client has no session yet.
func SessionID(ctx *fiber.Ctx) string {
	return ctx.Cookies(constant.SessionCookieName)
}

// ResolveSessionID returns the cookie-carried guest id, minting a fresh one
// for first contact. Minting never fails.
func ResolveSessionID(ctx *fiber.Ctx) string {
	if sessionId := SessionID(ctx); sessionId != "" {
		return sessionId
	}
	return uuid.NewString()
}

// SetSessionCookie (re-)sets the guest cookie on the response. Called on
// every path that resolved a session so a freshly minted id sticks.
func SetSessionCookie(ctx *fiber.Ctx, sessionId string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    sessionId,
		MaxAge:   constant.SessionCookieMaxAge,
		HTTPOnly: true,
		Path:     "/",
	})
}
