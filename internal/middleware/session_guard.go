package middleware

import (
	"net/http"

	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

// SessionGuard はトークンのセッションがまだ生きているか確認する。
// ログアウト済みなら期限内のトークンでも401にする。
// AuthJWTの後ろに置くこと。
func SessionGuard(sessions repository.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID, ok := c.Get(CtxSessionIDKey).(string)
			if !ok || sessionID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			sess, found := sessions.Find(c.Request().Context(), sessionID)
			if !found {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//トークンとセッションのユーザーが食い違っていたら弾く
			userID, _ := c.Get(CtxUserIDKey).(string)
			if sess.UserID != userID {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			return next(c)
		}
	}
}
