package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "workhub/internal/errors"
)

// callerContextKey is where verified claims are stored on the request context.
const callerContextKey = "caller"

// RequireAuth builds the gate middleware for protected routes. Token
// extraction and verification happen before any handler or store access;
// on success the caller's claims are attached to the request context.
// Tokens revoked via logout are rejected even before their expiry.
func RequireAuth(jwtService *JWTService, tokenStore TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  callerContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			if claims.ID != "" {
				revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if err != nil || revoked {
					return nil, apperrors.ErrInvalidToken
				}
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Extraction failures mean no credential was presented at all;
			// anything else is a bad credential.
			var extractionErr *echojwt.TokenExtractionError
			if errors.As(err, &extractionErr) || errors.Is(err, echojwt.ErrJWTMissing) {
				return apperrors.ErrUnauthenticated
			}
			return apperrors.ErrInvalidToken
		},
	})
}

// CurrentUser returns the verified claims attached by RequireAuth.
func CurrentUser(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(callerContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}
