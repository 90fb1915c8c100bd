package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-credentials-login/internal/application"
	"github.com/oksasatya/go-credentials-login/internal/domain/entity"
	"github.com/oksasatya/go-credentials-login/pkg/helpers"
)

type mockFlow struct {
	mock.Mock
}

func (m *mockFlow) SignIn(ctx context.Context, credentials map[string]any) (*application.Session, error) {
	args := m.Called(ctx, credentials)
	s, _ := args.Get(0).(*application.Session)
	return s, args.Error(1)
}

func (m *mockFlow) Current(ctx context.Context, token string) (*entity.Identity, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*entity.Identity)
	return id, args.Error(1)
}

func (m *mockFlow) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func newTestRouter(flow LoginFlow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	h := NewHandler(flow, NewPages(NewProviders("light")), helpers.NewCookie("localhost", false), logger)

	r := gin.New()
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/dashboard", h.Dashboard)
	r.POST("/logout", h.Logout)
	return r
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_LoginPage(t *testing.T) {
	r := newTestRouter(new(mockFlow))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `<main><h1>Please log in to continue.</h1>`)
}

func TestHandler_Login(t *testing.T) {
	ada := &entity.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

	cases := map[string]struct {
		signInSession  *application.Session
		signInErr      error
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		"success redirects to dashboard": {
			signInSession:  &application.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour), Identity: ada},
			expectedStatus: http.StatusSeeOther,
			expectCookie:   true,
		},
		"denial re-renders with generic message": {
			signInErr:      application.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid credentials.",
		},
		"lookup failure renders generic error": {
			signInErr:      &application.FetchUserError{Err: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Something went wrong.",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			flow := new(mockFlow)
			flow.On("SignIn", mock.Anything, map[string]any{
				"email":    []string{"ada@example.com"},
				"password": []string{"correct-horse"},
			}).Return(tc.signInSession, tc.signInErr).Once()
			r := newTestRouter(flow)

			w := postForm(r, "/login", url.Values{"email": {"ada@example.com"}, "password": {"correct-horse"}})

			assert.Equal(t, tc.expectedStatus, w.Code)
			flow.AssertExpectations(t)
			if tc.expectCookie {
				assert.Equal(t, "/dashboard", w.Header().Get("Location"))
				cookies := w.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, "tok", cookies[0].Value)
				return
			}
			assert.Contains(t, w.Body.String(), tc.expectedBody)
			assert.Contains(t, w.Body.String(), `value="ada@example.com"`)
			assert.NotContains(t, w.Body.String(), "correct-horse")
			assert.NotContains(t, w.Body.String(), "db down")
		})
	}
}

func TestHandler_Dashboard(t *testing.T) {
	ada := &entity.Identity{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

	cases := map[string]struct {
		cookie         string
		current        *entity.Identity
		currentErr     error
		expectedStatus int
		expectedBody   string
		expectClear    bool
	}{
		"anonymous is redirected": {
			expectedStatus: http.StatusSeeOther,
		},
		"invalid session is redirected": {
			cookie:         "tok",
			currentErr:     application.ErrInvalidSession,
			expectedStatus: http.StatusSeeOther,
			expectClear:    true,
		},
		"store failure keeps the session": {
			cookie:         "tok",
			currentErr:     errors.New("redis down"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Something went wrong.",
		},
		"signed in user sees dashboard": {
			cookie:         "tok",
			current:        ada,
			expectedStatus: http.StatusOK,
			expectedBody:   "Signed in as Ada (ada@example.com)",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			flow := new(mockFlow)
			flow.On("Current", mock.Anything, tc.cookie).Return(tc.current, tc.currentErr)
			r := newTestRouter(flow)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			cookies := w.Result().Cookies()
			if tc.expectClear {
				require.Len(t, cookies, 1)
				assert.Less(t, cookies[0].MaxAge, 0)
			} else {
				assert.Empty(t, cookies)
			}
			if tc.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/login", w.Header().Get("Location"))
				return
			}
			assert.Contains(t, w.Body.String(), tc.expectedBody)
			assert.Contains(t, w.Body.String(), `data-provider="ui"`)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	flow := new(mockFlow)
	flow.On("SignOut", mock.Anything, "tok").Return(nil).Once()
	r := newTestRouter(flow)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	flow.AssertExpectations(t)
}
