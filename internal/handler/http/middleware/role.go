package middleware

import (
	"net/http"

	"github.com/DLT-Africa-Hub/Recruita/internal/domain/user"
	"github.com/DLT-Africa-Hub/Recruita/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromClaims(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.ParseRole(roleStr)
}

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCompany requires the company role
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleCompany {
			response.HandleError(w, user.ErrCompanyRoleRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireGraduate requires the graduate role
func RequireGraduate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleGraduate {
			response.HandleError(w, user.ErrGraduateRoleRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
