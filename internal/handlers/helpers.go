package handlers

import (
	"net/http"

	"github.com/Ashish-04-codes/Portfolio/internal/auth"
)

// actorEmail returns the signed-in admin's email for audit attribution,
// or empty for unauthenticated requests.
func actorEmail(r *http.Request) string {
	if claims := auth.ClaimsFromRequest(r); claims != nil {
		return claims.Email
	}
	return ""
}
