package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jardellitieri/placar-magico/controller"
	"github.com/jardellitieri/placar-magico/db"
	"github.com/jardellitieri/placar-magico/model"
	"github.com/unrolled/render"
)

func rootHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		games, err := ctrl.ListGames(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		teams, _, err := ctrl.GetDraft(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"playerCount": len(players),
			"gameCount":   len(games),
			"teamCount":   len(teams),
		}
		render.HTML(w, http.StatusOK, "home", data)
	}
}

func playersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"players": players,
			"roles":   model.RoleLabels,
		}
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func addPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		level, err := strconv.Atoi(r.PostForm.Get("level"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "level must be a number")
			return
		}

		_, err = ctrl.AddPlayer(r.Context(), r.PostForm.Get("name"), r.PostForm.Get("role"), level)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, "/players", http.StatusSeeOther)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "player not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		data := map[string]any{
			"player": p,
			"roles":  model.RoleLabels,
		}
		render.HTML(w, http.StatusOK, "player", data)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		playerID := chi.URLParam(r, "playerID")

		switch r.PostForm.Get("update") {
		case "profile":
			name := r.PostForm.Get("name")
			role := r.PostForm.Get("role")
			level, err := strconv.Atoi(r.PostForm.Get("level"))
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", "level must be a number")
				return
			}
			upd := controller.PlayerUpdate{Name: &name, Role: &role, Level: &level}
			if _, err := ctrl.UpdatePlayer(r.Context(), playerID, upd); err != nil {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
				return
			}
		case "availability":
			available := r.PostForm.Get("available") == "true"
			upd := controller.PlayerUpdate{AvailableForDraft: &available}
			if _, err := ctrl.UpdatePlayer(r.Context(), playerID, upd); err != nil {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
				return
			}
		case "delete":
			if err := ctrl.DeletePlayer(r.Context(), playerID); err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
			http.Redirect(w, r, "/players", http.StatusSeeOther)
			return
		default:
			render.HTML(w, http.StatusBadRequest, "400", fmt.Sprintf("unknown update type: %s", r.PostForm.Get("update")))
			return
		}

		http.Redirect(w, r, "/players/"+playerID, http.StatusSeeOther)
	}
}

func draftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, reserves, err := ctrl.GetDraft(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"teams":    teams,
			"reserves": reserves,
		}
		render.HTML(w, http.StatusOK, "draft", data)
	}
}

func generateDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := ctrl.GenerateDraft(r.Context())
		if err != nil {
			if errors.Is(err, controller.ErrInsufficientPlayers) || errors.Is(err, controller.ErrNoTeamsFormable) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}
		http.Redirect(w, r, "/draft", http.StatusSeeOther)
	}
}

func clearDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.ClearDraft(r.Context()); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/draft", http.StatusSeeOther)
	}
}

func swapHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		a, err := parseSelection(r.PostForm.Get("playerA"), r.PostForm.Get("originA"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		b, err := parseSelection(r.PostForm.Get("playerB"), r.PostForm.Get("originB"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.SwapPlayers(r.Context(), a, b); err != nil {
			// Reselecting the same player is a deselect in the UI, not an
			// error worth a page.
			if errors.Is(err, controller.ErrNoOpSwap) {
				http.Redirect(w, r, "/draft", http.StatusSeeOther)
				return
			}
			if errors.Is(err, controller.ErrRoleMismatch) || errors.Is(err, controller.ErrBothReserve) {
				render.HTML(w, http.StatusBadRequest, "400", err.Error())
				return
			}
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/draft", http.StatusSeeOther)
	}
}

func parseSelection(playerID, origin string) (controller.Selection, error) {
	if playerID == "" {
		return controller.Selection{}, errors.New("missing player id")
	}
	if origin == "reserve" {
		return controller.Selection{PlayerID: playerID, TeamIndex: controller.ReserveOrigin}, nil
	}
	idx, err := strconv.Atoi(origin)
	if err != nil || idx < 0 {
		return controller.Selection{}, fmt.Errorf("invalid origin: %s", origin)
	}
	return controller.Selection{PlayerID: playerID, TeamIndex: idx}, nil
}

func gamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGames(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		teams, _, err := ctrl.GetDraft(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		players, err := ctrl.ListPlayers(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"games":   games,
			"teams":   teams,
			"players": players,
		}
		render.HTML(w, http.StatusOK, "games", data)
	}
}

func recordGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, homeTeam, awayTeam, events, err := parseGameForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.RecordGame(r.Context(), date, homeTeam, awayTeam, events); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, "/games", http.StatusSeeOther)
	}
}

func editGameFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		games, err := ctrl.ListGames(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		for i := range games {
			if games[i].ID == gameID {
				players, err := ctrl.ListPlayers(r.Context())
				if err != nil {
					render.HTML(w, http.StatusInternalServerError, "500", err.Error())
					return
				}
				data := map[string]any{
					"game":    games[i],
					"players": players,
				}
				render.HTML(w, http.StatusOK, "gameEdit", data)
				return
			}
		}
		render.HTML(w, http.StatusNotFound, "404", "game not found")
	}
}

func updateGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		date, homeTeam, awayTeam, events, err := parseGameForm(r)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if _, err := ctrl.UpdateGame(r.Context(), gameID, date, homeTeam, awayTeam, events); err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "game not found")
				return
			}
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, "/games", http.StatusSeeOther)
	}
}

// parseGameForm reads the game fields plus the parallel event-player and
// event-kind arrays the game form submits.
func parseGameForm(r *http.Request) (time.Time, string, string, []model.GameEvent, error) {
	if err := r.ParseForm(); err != nil {
		return time.Time{}, "", "", nil, err
	}

	date, err := time.Parse(time.DateOnly, r.PostForm.Get("date"))
	if err != nil {
		return time.Time{}, "", "", nil, fmt.Errorf("unable to parse game date, expected format is YYYY-MM-DD: %v", err)
	}

	playerIDs := r.PostForm["event-player"]
	kinds := r.PostForm["event-kind"]
	if len(playerIDs) != len(kinds) {
		return time.Time{}, "", "", nil, errors.New("malformed event list")
	}

	events := make([]model.GameEvent, 0, len(playerIDs))
	for i := range playerIDs {
		kind, ok := model.ParseEventKind(kinds[i])
		if !ok {
			return time.Time{}, "", "", nil, fmt.Errorf("unknown event kind: %s", kinds[i])
		}
		events = append(events, model.GameEvent{PlayerID: playerIDs[i], Kind: kind})
	}

	return date, r.PostForm.Get("homeTeam"), r.PostForm.Get("awayTeam"), events, nil
}

func statsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats []model.PlayerStats
		var err error

		dateParam := r.URL.Query().Get("date")
		if dateParam != "" {
			date, perr := time.Parse(time.DateOnly, dateParam)
			if perr != nil {
				render.HTML(w, http.StatusBadRequest, "400", "expected date format is YYYY-MM-DD")
				return
			}
			stats, err = ctrl.GetPlayerStatsForDate(r.Context(), date)
		} else {
			stats, err = ctrl.GetPlayerStats(r.Context())
		}
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		scorers, err := ctrl.TopScorers(r.Context(), 10)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		assists, err := ctrl.TopAssists(r.Context(), 10)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		goalkeepers, err := ctrl.GetGoalkeeperStats(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"date":        dateParam,
			"stats":       stats,
			"scorers":     scorers,
			"assists":     assists,
			"goalkeepers": goalkeepers,
		}
		render.HTML(w, http.StatusOK, "stats", data)
	}
}

func exportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := ctrl.ExportStats(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		filename := controller.ExportFileName(time.Now())
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func voiceHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		cmd, err := ctrl.ParseVoiceCommand(r.Context(), r.PostForm.Get("text"))
		if err != nil {
			if errors.Is(err, controller.ErrUnrecognizedCommand) {
				render.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "unrecognized"})
				return
			}
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, map[string]string{
			"kind":       string(cmd.Kind),
			"playerId":   cmd.PlayerID,
			"playerName": cmd.PlayerName,
		})
	}
}

func resetStatisticsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		if r.PostForm.Get("confirm") != "yes" {
			render.HTML(w, http.StatusBadRequest, "400", "reset must be confirmed")
			return
		}

		if err := ctrl.ResetAllStatistics(r.Context()); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
