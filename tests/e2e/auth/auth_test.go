//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterAndLogin() {
	creds := reqdto.RegisterRequest{
		Email:    "newguest@example.com",
		Password: "supersecret1",
	}

	s.Run("register, log in and fetch the profile", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, creds, "")
		var registered resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &registered)
		require.Equal(t, creds.Email, registered.Email)
		require.Equal(t, "guest", registered.Role)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    creds.Email,
			Password: creds.Password,
		}, "")
		var login resdto.LoginResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &login)
		require.NotEmpty(t, login.Token)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.Token)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, creds.Email, me.Email)
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, creds, "")
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, creds, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("wrong password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, creds, "")
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    creds.Email,
			Password: "wrong-password",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("unknown email answers the same as a wrong password", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqdto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "irrelevant1",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})

	s.Run("me without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
