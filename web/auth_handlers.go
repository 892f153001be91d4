package web

import (
	"net/http"

	"github.com/jardellitieri/placar-magico/controller"
	"github.com/unrolled/render"
)

const sessionCookie = "pm_session"

func authLoginHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := ctrl.AuthStart()
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func authCallbackHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		token, err := ctrl.AuthExchange(r.Context(), params.Get("state"), params.Get("code"))
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// requireSession gates the app behind the sign-in when one is configured.
// Without a configured provider the app runs open.
func requireSession(ctrl controller.C, render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ctrl.AuthConfigured() {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(sessionCookie)
			if err != nil || !ctrl.ValidSession(cookie.Value) {
				render.HTML(w, http.StatusUnauthorized, "login", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
