// apps/go-cli/internal/httpserver/server.go
//
// HTTP server wiring for `wordle serve`.
// Responsibilities:
//   - Router + middleware (JSON, request IDs, panic recovery, timeouts, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily endpoint: POST /daily/new (see routes_daily.go).
//
// Notes:
//   - Every game is single-player and lives only in the Store.
//   - The answer is never sent to the client until the game is lost.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Options tunes game creation.
type Options struct {
	MaxAttempts int              // attempt budget per game (default 6)
	DailySalt   string           // HMAC salt for the daily answer
	Now         func() time.Time // clock for the daily answer (default time.Now)
}

// Server bundles router, game store and word list.
type Server struct {
	r     *chi.Mux
	store store.Store
	words *words.List
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, wl *words.List, opts Options) *Server {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = game.DefaultMaxAttempts
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), store: st, words: wl, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g, "length": s.words.Length()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Get("/game/{id}", s.handleGetGame)

	s.mountDaily(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one debug line per request with status and latency.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("http request")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode   string `json:"mode"`   // "normal" | "daily"
	Answer string `json:"answer"` // optional fixed answer; must be on the answer list
}
type newGameRes struct {
	GameID      string `json:"gameId"`
	Length      int    `json:"length"`
	MaxAttempts int    `json:"maxAttempts"`
	Date        string `json:"date,omitempty"`   // daily games only
	NextAt      string `json:"nextAt,omitempty"` // daily games: next answer rollover (RFC 3339, UTC)
}

// handleNewGame creates a new game and stores it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	switch req.Mode {
	case "", "normal":
		answer := strings.ToLower(req.Answer)
		if answer == "" {
			answer = s.words.Random()
		} else if !s.words.IsAnswer(answer) {
			writeError(w, http.StatusBadRequest, "invalid_answer")
			return
		}
		s.startGame(w, r, answer, newGameRes{})
	case "daily":
		s.handleDailyNew(w, r)
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
	}
}

// startGame stores a fresh game for answer and writes res with the game's
// id and dimensions filled in.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, answer string, res newGameRes) {
	g := game.New(answer,
		game.WithMaxAttempts(s.opts.MaxAttempts),
		game.WithScorer(game.Scorer{Policy: game.PolicyDictionary, Dictionary: s.words}),
	)
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	res.GameID, res.Length, res.MaxAttempts = g.ID, g.Length(), g.MaxAttempts
	log.Info().Str("gameId", g.ID).Str("date", res.Date).Int("games", s.store.Len()).Msg("game started")
	writeJSON(w, http.StatusOK, res)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Letters  game.ScoredGuess `json:"letters"`
	State    game.State       `json:"state"` // "playing" | "won" | "lost"
	Attempts int              `json:"attempts"`
	Answer   string           `json:"answer,omitempty"` // revealed on loss
}

// handleGuess applies a guess to a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(g *game.Game) error {
		scored, state, err := g.ApplyGuess(req.Guess)
		if err != nil {
			return err
		}
		res = guessRes{Letters: scored, State: state, Attempts: g.Attempts()}
		if state == game.StateLost {
			res.Answer = g.Secret()
		}
		return nil
	})
	if err != nil {
		status, kind := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		}
		writeError(w, status, kind)
		return
	}
	if res.State != game.StatePlaying {
		log.Info().Str("gameId", req.GameID).Str("state", string(res.State)).Int("attempts", res.Attempts).Msg("game finished")
	}
	writeJSON(w, http.StatusOK, res)
}

// gameRes is the public view of a game.
type gameRes struct {
	GameID      string             `json:"gameId"`
	State       game.State         `json:"state"`
	Length      int                `json:"length"`
	MaxAttempts int                `json:"maxAttempts"`
	Guesses     []game.ScoredGuess `json:"guesses"`
	Answer      string             `json:"answer,omitempty"`
}

// handleGetGame returns the board so far.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	var res gameRes
	err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(g *game.Game) error {
		res = gameRes{
			GameID:      g.ID,
			State:       g.State(),
			Length:      g.Length(),
			MaxAttempts: g.MaxAttempts,
			Guesses:     append([]game.ScoredGuess(nil), g.Guesses...),
		}
		if g.State() == game.StateLost {
			res.Answer = g.Secret()
		}
		return nil
	})
	if err != nil {
		status, kind := errorStatus(err)
		writeError(w, status, kind)
		return
	}
	if res.Guesses == nil {
		res.Guesses = []game.ScoredGuess{}
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------- errors ------------------------------------

// errorStatus maps domain errors to an HTTP status and a stable error kind.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, game.ErrGameFinished):
		return http.StatusConflict, "game_finished"
	case errors.Is(err, game.ErrWordTooShort):
		return http.StatusBadRequest, "word_too_short"
	case errors.Is(err, game.ErrWordTooLong):
		return http.StatusBadRequest, "word_too_long"
	case errors.Is(err, game.ErrNonAlphabetic):
		return http.StatusBadRequest, "non_alphabetic_character"
	case errors.Is(err, game.ErrNotAValidWord):
		return http.StatusBadRequest, "not_a_valid_word"
	}
	return http.StatusInternalServerError, "internal"
}

func writeError(w http.ResponseWriter, status int, kind string) {
	writeJSON(w, status, map[string]string{"error": kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
