package handler_test

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"scoreapi/internal/method/handler"
	"scoreapi/internal/method/metrics"
	"scoreapi/internal/method/service"
	"scoreapi/internal/platform/middleware"
	"scoreapi/internal/storage"
)

// HandlerSuite validates HTTP concerns: body parsing, envelope shape,
// status mapping. Uses real components end to end, no mocks.
type HandlerSuite struct {
	suite.Suite
	redis  *miniredis.Miniredis
	router http.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.redis = miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: s.redis.Addr()})
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	store := storage.New(rdb, logger)
	svc := service.New(store, logger, "Otus", "42")
	h := handler.New(svc, logger, metrics.New(prometheus.NewRegistry()))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) post(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/method", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func signedBody(s *suite.Suite, body map[string]any) []byte {
	account, _ := body["account"].(string)
	login, _ := body["login"].(string)
	sum := sha512.Sum512([]byte(account + login + "Otus"))
	body["token"] = hex.EncodeToString(sum[:])
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	return raw
}

func (s *HandlerSuite) TestMalformedBody() {
	rec := s.post([]byte("not valid json"))

	s.Equal(http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("Bad Request", body.Error)
	s.Equal(http.StatusBadRequest, body.Code)
}

func (s *HandlerSuite) TestEmptyObjectIsInvalidRequest() {
	// {} parses fine; it must fail schema validation, never auth or worse.
	rec := s.post([]byte(`{}`))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error map[string]string `json:"error"`
		Code  int               `json:"code"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal(http.StatusUnprocessableEntity, body.Code)
	s.NotEmpty(body.Error)
}

func (s *HandlerSuite) TestForbidden() {
	raw, err := json.Marshal(map[string]any{
		"account":   "horns&hoofs",
		"login":     "h&f",
		"token":     "bad",
		"method":    "online_score",
		"arguments": map[string]any{},
	})
	s.Require().NoError(err)

	rec := s.post(raw)

	s.Equal(http.StatusForbidden, rec.Code)

	var body struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("Forbidden", body.Error)
}

func (s *HandlerSuite) TestOnlineScoreOK() {
	raw := signedBody(&s.Suite, map[string]any{
		"account": "horns&hoofs",
		"login":   "h&f",
		"method":  "online_score",
		"arguments": map[string]any{
			"phone": "79175002040",
			"email": "stupnikov@otus.ru",
		},
	})

	rec := s.post(raw)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Response map[string]float64 `json:"response"`
		Code     int                `json:"code"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal(http.StatusOK, body.Code)
	s.InDelta(3.0, body.Response["score"], 0.001)
}

func (s *HandlerSuite) TestLargeNumericPhoneSurvivesDecoding() {
	raw := signedBody(&s.Suite, map[string]any{
		"account": "horns&hoofs",
		"login":   "h&f",
		"method":  "online_score",
		"arguments": map[string]any{
			"phone": 79175002040,
			"email": "stupnikov@otus.ru",
		},
	})

	rec := s.post(raw)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerSuite) TestClientsInterestsOK() {
	s.Require().NoError(s.redis.Set("i:1", `["books"]`))
	s.Require().NoError(s.redis.Set("i:2", `["travel"]`))
	s.Require().NoError(s.redis.Set("i:3", `["music"]`))

	raw := signedBody(&s.Suite, map[string]any{
		"account": "horns&hoofs",
		"login":   "h&f",
		"method":  "clients_interests",
		"arguments": map[string]any{
			"client_ids": []int{1, 2, 3},
		},
	})

	rec := s.post(raw)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Response map[string][]string `json:"response"`
		Code     int                 `json:"code"`
	}
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Len(body.Response, 3)
	s.Equal([]string{"books"}, body.Response["1"])
}

func (s *HandlerSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodPost, "/method", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal("req-42", rec.Header().Get(middleware.RequestIDHeader))
}
