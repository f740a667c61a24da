package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/stores"
)

// RouteMeta declares what a view requires before it may be entered,
// mirroring the route table the browser UI navigates.
type RouteMeta struct {
	RequiresTurno bool
	RequiresAuth  bool
	Roles         []string
}

// Decision is the outcome of one navigation attempt.
type Decision int

const (
	Admit Decision = iota
	RedirectHome
	RedirectLogin
)

// Decide evaluates the admission rules in strict order, first match
// wins:
//  1. shift required but none selected     -> home
//  2. no authentication required           -> admit
//  3. authentication check failed          -> login
//  4. no role restriction                  -> admit
//  5. session has no resolved role        -> login
//  6. role not in the allowed set          -> home
//  7. otherwise                            -> admit
func Decide(meta RouteMeta, selectedTurno int, authenticated bool, role string) Decision {
	if meta.RequiresTurno && selectedTurno == models.NoTurno {
		return RedirectHome
	}
	if !meta.RequiresAuth {
		return Admit
	}
	if !authenticated {
		return RedirectLogin
	}
	if len(meta.Roles) == 0 {
		return Admit
	}
	if role == "" {
		return RedirectLogin
	}
	for _, allowed := range meta.Roles {
		if allowed == role {
			return Admit
		}
	}
	return RedirectHome
}

// Guard adapts Decide into Gin middleware. The authentication check
// runs once per navigation attempt, and only when the target needs it;
// a missing shift selection short-circuits without a network call.
func Guard(meta RouteMeta, turni *stores.TurnoStore, auth *stores.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		selected := turni.Selected()

		authenticated := false
		role := ""
		needsCheck := meta.RequiresAuth && !(meta.RequiresTurno && selected == models.NoTurno)
		if needsCheck {
			authenticated = auth.CheckAuth()
			if user := auth.User(); user != nil {
				role = user.Ruolo
			}
		}

		switch Decide(meta, selected, authenticated, role) {
		case RedirectHome:
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
		case RedirectLogin:
			c.Redirect(http.StatusSeeOther, stores.LoginPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
