package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/config"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
	mockedRest "github.com/rocketscienceinc/tictactoe-promo/mocks/rest"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

const (
	testSessionID   = "5d7e3f10-2c4b-4a8e-b1f2-9a8b7c6d5e4f"
	testOrigin      = "http://localhost:5173"
	testRouteSecret = "hidden-door"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	server *Server
	game   *mockedRest.MockgameUseCase
	admin  *mockedRest.MockadminUseCase
}

func newTestServer(t *testing.T, adminConf config.Admin) *testServer {
	t.Helper()

	if adminConf.LoginPerMinute == 0 {
		adminConf.LoginPerMinute = 5
	}

	conf := &config.Config{CORSOrigins: []string{testOrigin}, Admin: adminConf}
	game := mockedRest.NewMockgameUseCase(t)
	admin := mockedRest.NewMockadminUseCase(t)

	return &testServer{
		server: New(suite.NewLogger(), conf, game, admin),
		game:   game,
		admin:  admin,
	}
}

func (that *testServer) do(method, path, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	that.server.ServeHTTP(rec, req)

	return rec
}

func withAdminCookie(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: "valid-token"})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func playedSession(t *testing.T, raw string, status entity.SessionStatus) *entity.Session {
	t.Helper()

	board, err := tictactoe.ParseBoard(raw)
	require.NoError(t, err)

	session := entity.NewSession(testSessionID, entity.DifficultyMedium, testNow)
	session.Board = board
	session.Status = status

	return session
}

func TestPing(t *testing.T) {
	ts := newTestServer(t, config.Admin{})

	rec := ts.do(http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGameHandler_NewGame(t *testing.T) {
	t.Run("Creates game", func(t *testing.T) {
		// Given: the use case creates an easy game
		ts := newTestServer(t, config.Admin{})
		ts.game.EXPECT().
			NewGame(mock.Anything, "easy").
			Return(entity.NewSession(testSessionID, entity.DifficultyEasy, testNow), nil).
			Once()

		// When: a new game is requested
		rec := ts.do(http.MethodPost, "/api/game/new", `{"difficulty":"easy"}`)

		// Then: the empty board is returned
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, testSessionID, body["session_id"])
		assert.Equal(t, "IN_PROGRESS", body["status"])
		assert.Equal(t, "easy", body["difficulty"])
		assert.Len(t, body["board"], 9)
		assert.Nil(t, body["winner"])
	})

	t.Run("Body is optional", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.game.EXPECT().
			NewGame(mock.Anything, "").
			Return(entity.NewSession(testSessionID, entity.DifficultyMedium, testNow), nil).
			Once()

		rec := ts.do(http.MethodPost, "/api/game/new", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.game.EXPECT().
			NewGame(mock.Anything, "nightmare").
			Return((*entity.Session)(nil), apperror.ErrValidation).
			Once()

		rec := ts.do(http.MethodPost, "/api/game/new", `{"difficulty":"nightmare"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeValidation, decode[errorResponse](t, rec).Error)
	})
}

func TestGameHandler_MakeMove(t *testing.T) {
	t.Run("Win carries the promo code", func(t *testing.T) {
		// Given: the move wins and a code is issued
		ts := newTestServer(t, config.Admin{})
		session := playedSession(t, "XXXOO....", entity.StatusWin)
		promo := &entity.PromoCode{Code: "ABCD2345", ExpiresAt: testNow.Add(72 * time.Hour)}

		ts.game.EXPECT().
			MakeMove(mock.Anything, testSessionID, 2).
			Return(&usecase.MoveOutcome{Session: session, PlayerMove: 2, Promo: promo}, nil).
			Once()

		// When: the move is posted
		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`","cell":2}`)

		// Then: the response carries winner and promo
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "WIN", body["status"])
		assert.Equal(t, "X", body["winner"])
		assert.Equal(t, float64(2), body["last_player_move"])
		assert.Nil(t, body["last_bot_move"])
		assert.Equal(t, "ABCD2345", body["promo_code"])
		assert.Equal(t, "2026-03-04T12:00:00Z", body["promo_expires_at"])
	})

	t.Run("Cell zero is a valid move", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		session := playedSession(t, "X...O....", entity.StatusInProgress)
		botMove := 4

		ts.game.EXPECT().
			MakeMove(mock.Anything, testSessionID, 0).
			Return(&usecase.MoveOutcome{Session: session, PlayerMove: 0, BotMove: &botMove}, nil).
			Once()

		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`","cell":0}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, float64(4), body["last_bot_move"])
		assert.NotContains(t, body, "promo_code")
	})

	t.Run("Draw has no winner", func(t *testing.T) {
		// Given: the player fills the last cell without a line
		ts := newTestServer(t, config.Admin{})
		session := playedSession(t, "XOXXOOOXX", entity.StatusDraw)

		ts.game.EXPECT().
			MakeMove(mock.Anything, testSessionID, 8).
			Return(&usecase.MoveOutcome{Session: session, PlayerMove: 8}, nil).
			Once()

		// When: the move is posted
		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`","cell":8}`)

		// Then: winner is null, not an empty mark
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"winner":null`)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "DRAW", body["status"])
		assert.Nil(t, body["winner"])
	})

	t.Run("Win without code explains why", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		session := playedSession(t, "XXXOO....", entity.StatusWin)

		ts.game.EXPECT().
			MakeMove(mock.Anything, testSessionID, 2).
			Return(&usecase.MoveOutcome{Session: session, PlayerMove: 2, PromoErr: apperror.ErrDailyLimitExceeded}, nil).
			Once()

		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`","cell":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, codeDailyLimitExceeded, body["promo_error"])
		assert.NotContains(t, body, "promo_code")
	})

	t.Run("Missing cell is rejected before the game is touched", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})

		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeValidation, decode[errorResponse](t, rec).Error)
	})

	t.Run("Malformed body", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})

		rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeValidation, decode[errorResponse](t, rec).Error)
	})

	t.Run("Errors map to status codes", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
			code   string
		}{
			{apperror.ErrInvalidSession, http.StatusNotFound, codeInvalidSession},
			{apperror.ErrIllegalMove, http.StatusBadRequest, codeIllegalMove},
			{apperror.ErrGameAlreadyOver, http.StatusConflict, codeGameAlreadyOver},
			{apperror.ErrSessionConflict, http.StatusConflict, codeSessionConflict},
			{apperror.ErrNoLegalMove, http.StatusInternalServerError, codeInternal},
		}

		for _, tt := range tests {
			t.Run(tt.code, func(t *testing.T) {
				ts := newTestServer(t, config.Admin{})
				ts.game.EXPECT().
					MakeMove(mock.Anything, testSessionID, 4).
					Return((*usecase.MoveOutcome)(nil), tt.err).
					Once()

				rec := ts.do(http.MethodPost, "/api/game/move", `{"session_id":"`+testSessionID+`","cell":4}`)

				assert.Equal(t, tt.status, rec.Code)
				assert.Equal(t, tt.code, decode[errorResponse](t, rec).Error)
			})
		}
	})
}

func TestGameHandler_GetGame(t *testing.T) {
	ts := newTestServer(t, config.Admin{})
	session := playedSession(t, "OOOXX.X..", entity.StatusLose)

	ts.game.EXPECT().
		GetGame(mock.Anything, testSessionID).
		Return(&usecase.GameState{Session: session}, nil).
		Once()

	rec := ts.do(http.MethodGet, "/api/game/"+testSessionID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "LOSE", body["status"])
	assert.Equal(t, "O", body["winner"])
	assert.Equal(t, []any{"O", "O", "O", "X", "X", ".", "X", ".", "."}, body["board"])
}

func TestGameHandler_ClaimGiftPromo(t *testing.T) {
	t.Run("Returns code", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		promo := &entity.PromoCode{Code: "GIFT2345", ExpiresAt: testNow.Add(72 * time.Hour)}

		ts.game.EXPECT().ClaimGiftPromo(mock.Anything, testSessionID).Return(promo, nil).Once()

		rec := ts.do(http.MethodPost, "/api/game/gift-promo", `{"session_id":"`+testSessionID+`"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, "GIFT2345", body["promo_code"])
		assert.Contains(t, body["message"], "GIFT2345")
	})

	t.Run("Refusals", func(t *testing.T) {
		tests := []struct {
			err    error
			status int
			code   string
		}{
			{apperror.ErrNotEligible, http.StatusUnprocessableEntity, codeNotEligible},
			{apperror.ErrAlreadyIssued, http.StatusConflict, codeAlreadyIssued},
			{apperror.ErrDailyLimitExceeded, http.StatusTooManyRequests, codeDailyLimitExceeded},
			{apperror.ErrInvalidSession, http.StatusNotFound, codeInvalidSession},
		}

		for _, tt := range tests {
			t.Run(tt.code, func(t *testing.T) {
				ts := newTestServer(t, config.Admin{})
				ts.game.EXPECT().
					ClaimGiftPromo(mock.Anything, testSessionID).
					Return((*entity.PromoCode)(nil), tt.err).
					Once()

				rec := ts.do(http.MethodPost, "/api/game/gift-promo", `{"session_id":"`+testSessionID+`"}`)

				assert.Equal(t, tt.status, rec.Code)
				assert.Equal(t, tt.code, decode[errorResponse](t, rec).Error)
			})
		}
	})

	t.Run("Session id is required", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})

		rec := ts.do(http.MethodPost, "/api/game/gift-promo", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Sets an HttpOnly cookie", func(t *testing.T) {
		// Given: valid credentials
		ts := newTestServer(t, config.Admin{SecureCookie: true})
		ts.admin.EXPECT().
			Login(mock.Anything, "admin", "correct horse battery").
			Return(&service.AdminToken{Value: "jwt", Username: "admin", ExpiresAt: time.Now().Add(12 * time.Hour)}, nil).
			Once()

		// When: the admin logs in
		rec := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"correct horse battery"}`)

		// Then: the token travels in a cookie only
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "jwt")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, adminCookieName, cookies[0].Name)
		assert.Equal(t, "jwt", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().
			Login(mock.Anything, "admin", "nope").
			Return((*service.AdminToken)(nil), apperror.ErrInvalidCredentials).
			Once()

		rec := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Rate limited per client", func(t *testing.T) {
		// Given: a limit of two attempts per minute
		ts := newTestServer(t, config.Admin{LoginPerMinute: 2})
		ts.admin.EXPECT().
			Login(mock.Anything, "admin", "nope").
			Return((*service.AdminToken)(nil), apperror.ErrInvalidCredentials).
			Twice()

		// When: a client keeps guessing
		codes := make([]int, 0, 3)
		for range 3 {
			rec := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`)
			codes = append(codes, rec.Code)
		}

		// Then: the third attempt never reaches the use case
		assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
	})

	t.Run("Change password shares the login budget", func(t *testing.T) {
		// Given: a limit of two attempts per minute, both spent on login
		ts := newTestServer(t, config.Admin{LoginPerMinute: 2})
		ts.admin.EXPECT().
			Login(mock.Anything, "admin", "nope").
			Return((*service.AdminToken)(nil), apperror.ErrInvalidCredentials).
			Twice()
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()

		for range 2 {
			rec := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"nope"}`)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		}

		// When: the same client tries to change the password
		rec := ts.do(http.MethodPost, "/api/admin/change-password",
			`{"current_password":"old password!","new_password":"new password!!"}`, withAdminCookie)

		// Then: the request is refused before the password check
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		ts.admin.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("Me requires a cookie", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})

		rec := ts.do(http.MethodGet, "/api/admin/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, codeUnauthorized, decode[errorResponse](t, rec).Error)
	})

	t.Run("Me with a valid cookie", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()

		rec := ts.do(http.MethodGet, "/api/admin/me", "", withAdminCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"admin"}`, rec.Body.String())
	})

	t.Run("Expired token", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("", apperror.ErrUnauthorized).Once()

		rec := ts.do(http.MethodGet, "/api/admin/settings", "", withAdminCookie)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Logout clears the cookie", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})

		rec := ts.do(http.MethodPost, "/api/admin/logout", "")

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, adminCookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("Change password reissues the cookie", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()
		ts.admin.EXPECT().
			ChangePassword(mock.Anything, "admin", "old password!", "new password!!").
			Return(&service.AdminToken{Value: "fresh", Username: "admin", ExpiresAt: time.Now().Add(time.Hour)}, nil).
			Once()

		rec := ts.do(http.MethodPost, "/api/admin/change-password",
			`{"current_password":"old password!","new_password":"new password!!"}`, withAdminCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "fresh", cookies[0].Value)
	})
}

func TestAuthHandler_RouteSecret(t *testing.T) {
	t.Run("Missing header hides the admin API", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{RouteSecret: testRouteSecret})

		rec := ts.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"x"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Wrong header hides the admin API", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{RouteSecret: testRouteSecret})

		rec := ts.do(http.MethodGet, "/api/admin/me", "", func(req *http.Request) {
			req.Header.Set(adminRouteSecretHeader, "guess")
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Correct header reaches authentication", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{RouteSecret: testRouteSecret})

		rec := ts.do(http.MethodGet, "/api/admin/me", "", func(req *http.Request) {
			req.Header.Set(adminRouteSecretHeader, testRouteSecret)
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Preflight passes without the header", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{RouteSecret: testRouteSecret})

		rec := ts.do(http.MethodOptions, "/api/admin/login", "", func(req *http.Request) {
			req.Header.Set("Origin", testOrigin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Game routes are not affected", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{RouteSecret: testRouteSecret})

		rec := ts.do(http.MethodGet, "/api/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminHandler_Settings(t *testing.T) {
	settings := &entity.Settings{
		TelegramEnabled:   true,
		TelegramChatID:    "-100123",
		TemplateWin:       "Code {code}",
		TemplateLose:      "Lost",
		PromoTTLHours:     72,
		PromoDailyLimit:   500,
		DefaultDifficulty: entity.DifficultyMedium,
	}

	t.Run("Get", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()
		ts.admin.EXPECT().GetSettings(mock.Anything).Return(settings, nil).Once()

		rec := ts.do(http.MethodGet, "/api/admin/settings", "", withAdminCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[map[string]any](t, rec)
		assert.Equal(t, true, body["telegram_enabled"])
		assert.Equal(t, float64(500), body["promo_daily_limit"])
		assert.Equal(t, "medium", body["default_difficulty"])
	})

	t.Run("Put passes only provided fields", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()
		ts.admin.EXPECT().
			UpdateSettings(mock.Anything, mock.MatchedBy(func(patch *usecase.SettingsPatch) bool {
				return patch.PromoDailyLimit != nil && *patch.PromoDailyLimit == 0 &&
					patch.TelegramEnabled == nil && patch.PromoTTLHours == nil
			})).
			Return(settings, nil).
			Once()

		rec := ts.do(http.MethodPut, "/api/admin/settings", `{"promo_daily_limit":0}`, withAdminCookie)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Put rejects out of range values", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Twice()

		rec := ts.do(http.MethodPut, "/api/admin/settings", `{"promo_ttl_hours":0}`, withAdminCookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = ts.do(http.MethodPut, "/api/admin/settings", `{"promo_daily_limit":-1}`, withAdminCookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_ListPromos(t *testing.T) {
	t.Run("Lists codes with their status", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		now := time.Now()
		report := &usecase.PromoReport{
			Promos: []*entity.PromoCode{
				{Code: "FRESH234", Reason: entity.ReasonGameWin, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
				{Code: "STALE234", Reason: entity.ReasonGiftWin, CreatedAt: now.Add(-96 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour)},
			},
			IssuedToday: 1,
			DailyLimit:  500,
		}

		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()
		ts.admin.EXPECT().ListPromos(mock.Anything, 10).Return(report, nil).Once()

		rec := ts.do(http.MethodGet, "/api/admin/promos?limit=10", "", withAdminCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[promosResponse](t, rec)
		require.Len(t, body.Items, 2)
		assert.Equal(t, entity.PromoActive, body.Items[0].Status)
		assert.Equal(t, entity.PromoExpired, body.Items[1].Status)
		assert.Equal(t, 1, body.IssuedToday)
		assert.Equal(t, 500, body.DailyLimit)
	})

	t.Run("Defaults the limit", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()
		ts.admin.EXPECT().
			ListPromos(mock.Anything, defaultPromoListLimit).
			Return(&usecase.PromoReport{}, nil).
			Once()

		rec := ts.do(http.MethodGet, "/api/admin/promos", "", withAdminCookie)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[promosResponse](t, rec).Items)
	})

	t.Run("Rejects non-numeric limit", func(t *testing.T) {
		ts := newTestServer(t, config.Admin{})
		ts.admin.EXPECT().Authenticate("valid-token").Return("admin", nil).Once()

		rec := ts.do(http.MethodGet, "/api/admin/promos?limit=lots", "", withAdminCookie)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
