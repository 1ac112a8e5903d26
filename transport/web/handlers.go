package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository"
)

const (
	sessionCookie = "session_id"
	themeCookie   = "theme"

	themeLight = "light"
	themeDark  = "dark"
)

// handleIndex - renders the page for the session's game, creating the game
// (and the session cookie) on first visit.
func (that *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleIndex")

	sessionID := sessionFromRequest(r)

	game, err := that.uGame.GetOrCreateGame(r.Context(), sessionID)
	if err != nil {
		log.Error("failed to get or create game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// the store is volatile, so a stale cookie may map to a fresh game
	if game.ID != sessionID {
		setSessionCookie(w, game.ID)
	}

	that.renderPage(w, game, themeFromRequest(r))
}

// handleMove - applies one move. Rejected moves change nothing and simply
// re-render the page; a cell index outside the board is a client bug.
func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleMove")

	sessionID := sessionFromRequest(r)
	if sessionID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cell, err := strconv.Atoi(r.Form.Get("cell"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err = that.uGame.MakeTurn(r.Context(), sessionID, cell)

	switch {
	case err == nil, apperror.IsRejectedMove(err), errors.Is(err, repository.ErrGameNotFound):
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, apperror.ErrInvalidCell):
		log.Error("move with invalid cell index", "cell", cell)
		http.Error(w, "Bad Request", http.StatusBadRequest)
	default:
		log.Error("failed to make turn", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// handleNewRound - clears the board, keeps the scoreboard.
func (that *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleNewRound")

	that.mutateAndRedirect(w, r, log.Error, that.uGame.StartNewRound)
}

// handleResetScores - clears the board and zeroes the scoreboard.
func (that *Server) handleResetScores(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleResetScores")

	that.mutateAndRedirect(w, r, log.Error, that.uGame.ResetScores)
}

// handleThemeToggle - flips the theme cookie. The theme belongs to the
// presentation layer, the engine never sees it.
func (that *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	next := themeDark
	if themeFromRequest(r) == themeDark {
		next = themeLight
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		HttpOnly: true,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// mutateAndRedirect - runs a session-scoped mutation and bounces back to the
// page. A missing session or game just bounces: the GET recreates both.
func (that *Server) mutateAndRedirect(
	w http.ResponseWriter,
	r *http.Request,
	logError func(msg string, args ...any),
	mutate func(ctx context.Context, gameID string) (*entity.Game, error),
) {
	sessionID := sessionFromRequest(r)
	if sessionID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := mutate(r.Context(), sessionID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		logError("mutation failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func sessionFromRequest(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
}

func themeFromRequest(r *http.Request) string {
	if c, err := r.Cookie(themeCookie); err == nil && c.Value == themeDark {
		return themeDark
	}
	return themeLight
}
