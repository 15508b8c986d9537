// apps/go-cli/internal/httpserver/routes_daily.go
//
// HTTP route for the "Daily Challenge" mode.
//   - POST /daily/new → start a game whose answer is fixed for today's date.
//     The response carries the date key and the UTC time the answer rolls over.
//
// The answer is picked from the answer list by HMAC(salt, YYYY-MM-DD), so
// every player gets the same word on the same UTC day. Games are played
// through the normal /game/guess endpoint.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// handleDailyNew starts a game with today's answer.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	answer := daily.Answer(now, s.opts.DailySalt, s.words.Answers())
	if answer == "" {
		writeError(w, http.StatusServiceUnavailable, "no_answers")
		return
	}
	s.startGame(w, r, answer, newGameRes{
		Date:   daily.DateKey(now),
		NextAt: daily.Next(now).Format(time.RFC3339),
	})
}
