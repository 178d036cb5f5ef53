package api

import (
	"net/http"
	"net/url"
	"time"

	"budgetbuddy/finance-api/config"
	"budgetbuddy/finance-api/model"
	"budgetbuddy/finance-api/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *APITestSuite) signup(email, username, phone string) map[string]any {
	w := s.request(http.MethodPost, "/users/signup", map[string]any{
		"email":        email,
		"username":     username,
		"phone_number": phone,
		"password":     testPassword,
	}, "")

	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())
	return s.decode(w)
}

func (s *APITestSuite) TestSignupVerifyLoginScenario() {
	body := s.signup("a@x.com", "alice", "+123456789012")
	assert.Equal(s.T(), "Verification code sent to your phone number", body["message"])

	var user model.User
	require.NoError(s.T(), s.api.DB.Where("username = ?", "alice").First(&user).Error)
	assert.False(s.T(), user.IsVerified)
	require.NotNil(s.T(), user.VerificationCode)
	assert.Len(s.T(), *user.VerificationCode, 6)

	code := s.sender.lastCode()
	require.NotEmpty(s.T(), code)
	assert.Equal(s.T(), *user.VerificationCode, code)

	// Login before verification is refused regardless of password
	w := s.form("/users/login", url.Values{"username": {"alice"}, "password": {testPassword}})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Please verify your account first", s.decode(w)["error"])

	// Wrong code leaves the user unverified
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	w = s.request(http.MethodPost, "/users/verify", map[string]any{
		"phone_number":      "+123456789012",
		"verification_code": wrong,
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Invalid verification code", s.decode(w)["error"])

	// Right code verifies and returns a bearer token
	w = s.request(http.MethodPost, "/users/verify", map[string]any{
		"phone_number":      "+123456789012",
		"verification_code": code,
	}, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	verifyBody := s.decode(w)
	assert.Equal(s.T(), "User verified successfully", verifyBody["message"])
	assert.Equal(s.T(), "bearer", verifyBody["token_type"])
	assert.NotEmpty(s.T(), verifyBody["access_token"])

	// Replaying the same code fails, the stored code was cleared
	w = s.request(http.MethodPost, "/users/verify", map[string]any{
		"phone_number":      "+123456789012",
		"verification_code": code,
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// Login now works and yields a usable token
	w = s.form("/users/login", url.Values{"username": {"alice"}, "password": {testPassword}})
	require.Equal(s.T(), http.StatusOK, w.Code)

	loginBody := s.decode(w)
	token, _ := loginBody["access_token"].(string)
	require.NotEmpty(s.T(), token)
	assert.Equal(s.T(), "bearer", loginBody["token_type"])

	w = s.request(http.MethodGet, "/expense", nil, token)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Empty(s.T(), s.decodeList(w))
}

func (s *APITestSuite) TestSignupDuplicateChecksFirstMatchWins() {
	s.createUser("alice", "a@x.com", "+123456789012", true)

	// Same email, first check wins even though username collides too
	w := s.request(http.MethodPost, "/users/signup", map[string]any{
		"email":        "a@x.com",
		"username":     "alice",
		"phone_number": "+123456789012",
		"password":     testPassword,
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Email already registered", s.decode(w)["error"])

	w = s.request(http.MethodPost, "/users/signup", map[string]any{
		"email":        "b@x.com",
		"username":     "alice",
		"phone_number": "+123456789012",
		"password":     testPassword,
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Username already taken", s.decode(w)["error"])

	w = s.request(http.MethodPost, "/users/signup", map[string]any{
		"email":        "b@x.com",
		"username":     "bob",
		"phone_number": "+123456789012",
		"password":     testPassword,
	}, "")
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	assert.Equal(s.T(), "Phone number already registered", s.decode(w)["error"])
}

func (s *APITestSuite) TestSignupDispatchFailureLeavesNoRow() {
	s.sender.fail = true

	w := s.request(http.MethodPost, "/users/signup", map[string]any{
		"email":        "a@x.com",
		"username":     "alice",
		"phone_number": "+123456789012",
		"password":     testPassword,
	}, "")
	assert.Equal(s.T(), http.StatusInternalServerError, w.Code)
	assert.Equal(s.T(), "Failed to send verification code", s.decode(w)["error"])

	var count int64
	require.NoError(s.T(), s.api.DB.Model(&model.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.Zero(s.T(), count)
}

func (s *APITestSuite) TestSignupValidation() {
	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad email", map[string]any{"email": "nope", "username": "alice", "phone_number": "+123456789012", "password": testPassword}},
		{"short username", map[string]any{"email": "a@x.com", "username": "al", "phone_number": "+123456789012", "password": testPassword}},
		{"bad phone", map[string]any{"email": "a@x.com", "username": "alice", "phone_number": "12345", "password": testPassword}},
		{"short password", map[string]any{"email": "a@x.com", "username": "alice", "phone_number": "+123456789012", "password": "short"}},
	}

	for _, tc := range cases {
		w := s.request(http.MethodPost, "/users/signup", tc.body, "")
		assert.Equal(s.T(), http.StatusBadRequest, w.Code, tc.name)
	}
}

func (s *APITestSuite) TestVerifyUnknownPhoneIsNotFound() {
	w := s.request(http.MethodPost, "/users/verify", map[string]any{
		"phone_number":      "+999999999999",
		"verification_code": "123456",
	}, "")
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "User not found", s.decode(w)["error"])
}

func (s *APITestSuite) TestLoginErrors() {
	s.createUser("alice", "a@x.com", "+123456789012", true)

	w := s.form("/users/login", url.Values{"username": {"bob"}, "password": {testPassword}})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Incorrect username", s.decode(w)["error"])

	w = s.form("/users/login", url.Values{"username": {"alice"}, "password": {"wrongpass"}})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Incorrect password", s.decode(w)["error"])
}

func (s *APITestSuite) TestAuthMiddlewareRejections() {
	s.createUser("alice", "a@x.com", "+123456789012", true)

	// No token
	w := s.request(http.MethodGet, "/expense", nil, "")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// Garbage token
	w = s.request(http.MethodGet, "/expense", nil, "garbage")
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Could not validate credentials", s.decode(w)["error"])

	// Expired token, same secret. The response must be identical to
	// the garbage-token one.
	expired := security.NewTokenService(config.TokenConfig{Secret: "test-secret", TTL: -time.Minute})
	token, err := expired.Issue("alice")
	require.NoError(s.T(), err)

	w = s.request(http.MethodGet, "/expense", nil, token)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Could not validate credentials", s.decode(w)["error"])

	// Valid token for a user that no longer exists
	ghost := s.tokenFor("ghost")
	w = s.request(http.MethodGet, "/expense", nil, ghost)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Could not validate credentials", s.decode(w)["error"])
}

func (s *APITestSuite) TestAuthMiddlewareBlocksUnverified() {
	s.createUser("carol", "c@x.com", "+123456789013", false)

	w := s.request(http.MethodGet, "/expense", nil, s.tokenFor("carol"))
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(s.T(), "Please verify your account first", s.decode(w)["error"])
}
