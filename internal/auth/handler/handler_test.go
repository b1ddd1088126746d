package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Souvik9205/KomyuLink/internal/auth/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	registerRes service.Result
	verifyRes   service.Result
	loginRes    service.Result
	resendRes   service.Result

	cleanupN   int
	cleanupErr error

	lastEmail string
}

func (s *stubAuth) Register(_ context.Context, email, _, _ string) service.Result {
	s.lastEmail = email
	return s.registerRes
}

func (s *stubAuth) Verify(_ context.Context, email, _ string) service.Result {
	s.lastEmail = email
	return s.verifyRes
}

func (s *stubAuth) Login(_ context.Context, email, _ string) service.Result {
	s.lastEmail = email
	return s.loginRes
}

func (s *stubAuth) ResendOTP(_ context.Context, email string) service.Result {
	s.lastEmail = email
	return s.resendRes
}

func (s *stubAuth) CleanupOTP(_ context.Context, email string) (int, error) {
	s.lastEmail = email
	return s.cleanupN, s.cleanupErr
}

func newTestRouter(stub *stubAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(stub, "localhost").RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(&stubAuth{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"All fields are required"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"invalid-email","password":"password123","name":"Test User"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid email format"}`, w.Body.String())
}

func TestRegisterPassesThroughResult(t *testing.T) {
	stub := &stubAuth{registerRes: service.Result{
		Status:  service.StatusOK,
		Message: "OTP sent successfully. Please check your email.",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"newuser@example.com","password":"password123","name":"Test User"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OTP sent successfully. Please check your email."}`, w.Body.String())
	assert.Equal(t, "newuser@example.com", stub.lastEmail)
}

func TestRegisterConflict(t *testing.T) {
	stub := &stubAuth{registerRes: service.Result{
		Status:  service.StatusConflict,
		Message: "User already registered",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"registered@example.com","password":"password123","name":"Test User"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"User already registered"}`, w.Body.String())
}

func TestVerifyValidation(t *testing.T) {
	r := newTestRouter(&stubAuth{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/verify", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"OTP and email are required"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/verify",
		`{"email":"invalid-email","otp":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid email format"}`, w.Body.String())
}

func TestVerifySuccessSetsCookie(t *testing.T) {
	stub := &stubAuth{verifyRes: service.Result{
		Status:  service.StatusOK,
		Message: "Login successful",
		Token:   "signed-token",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/verify",
		`{"email":"newuser@example.com","otp":"123456"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Login successful"}`, w.Body.String())

	cookie := tokenCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "localhost", cookie.Domain)
	assert.False(t, cookie.Expires.IsZero())
}

func TestVerifyFailureSetsNoCookie(t *testing.T) {
	stub := &stubAuth{verifyRes: service.Result{
		Status:  service.StatusInvalid,
		Message: "Invalid OTP",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/verify",
		`{"email":"newuser@example.com","otp":"000000"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, tokenCookie(t, w))
}

func TestLoginValidation(t *testing.T) {
	r := newTestRouter(&stubAuth{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Email and password are required"}`, w.Body.String())
}

func TestLoginUnauthorized(t *testing.T) {
	stub := &stubAuth{loginRes: service.Result{
		Status:  service.StatusUnauthorized,
		Message: "Invalid password",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"registered@example.com","password":"wrongpassword"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid password"}`, w.Body.String())
	assert.Nil(t, tokenCookie(t, w))
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	stub := &stubAuth{loginRes: service.Result{
		Status:  service.StatusOK,
		Message: "Login successful",
		Token:   "signed-token",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"registered@example.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := tokenCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
}

func TestResendValidation(t *testing.T) {
	r := newTestRouter(&stubAuth{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/user/resend-otp", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Email is required"}`, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/user/resend-otp",
		`{"email":"invalid-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid email format"}`, w.Body.String())
}

func TestResendNotFound(t *testing.T) {
	stub := &stubAuth{resendRes: service.Result{
		Status:  service.StatusNotFound,
		Message: "No OTP found for this email",
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/auth/user/resend-otp",
		`{"email":"nonexistent@example.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No OTP found for this email"}`, w.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(&stubAuth{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, w.Body.String())

	cookie := tokenCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestCleanupOTP(t *testing.T) {
	stub := &stubAuth{cleanupN: 2}
	r := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/cleanup/otp/newuser@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OTP cleaned up for newuser@example.com", w.Body.String())
	assert.Equal(t, "newuser@example.com", stub.lastEmail)
}

func TestCleanupOTPFailure(t *testing.T) {
	stub := &stubAuth{cleanupErr: errors.New("redis down")}
	r := newTestRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/cleanup/otp/newuser@example.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
}
