package api

import (
	"fmt"
	"net/http"
	"time"

	"budgetbuddy/finance-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *APITestSuite) TestIncomeCreateFetchPatchDelete() {
	_, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	w := s.request(http.MethodPost, "/income", map[string]any{
		"amount":       2500.0,
		"date":         "2024-03-01",
		"source":       "Salary",
		"is_recurring": true,
	}, token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	created := s.decode(w)
	id := int(created["id"].(float64))
	assert.Equal(s.T(), 2500.0, created["amount"])
	assert.Equal(s.T(), "Salary", created["source"])

	w = s.request(http.MethodGet, fmt.Sprintf("/income/%d", id), nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "2024-03-01", s.decode(w)["date"])

	// Partial patch: only the amount changes
	w = s.request(http.MethodPatch, fmt.Sprintf("/income/%d", id), map[string]any{
		"amount": 2600.0,
	}, token)
	require.Equal(s.T(), http.StatusOK, w.Code)

	patched := s.decode(w)
	assert.Equal(s.T(), 2600.0, patched["amount"])
	assert.Equal(s.T(), "Salary", patched["source"])
	assert.Equal(s.T(), true, patched["is_recurring"])

	w = s.request(http.MethodDelete, fmt.Sprintf("/income/%d", id), nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "Income deleted successfully", s.decode(w)["message"])

	w = s.request(http.MethodGet, fmt.Sprintf("/income/%d", id), nil, token)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APITestSuite) TestIncomeScopedToOwner() {
	_, aliceToken := s.verifiedUser("alice", "a@x.com", "+123456789012")
	bob, _ := s.verifiedUser("bob", "b@x.com", "+123456789013")

	income := s.seedIncome(bob.ID, 100, model.NewDate(2024, time.March, 1), "Freelance", false)

	w := s.request(http.MethodGet, fmt.Sprintf("/income/%d", income.ID), nil, aliceToken)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
	assert.Equal(s.T(), "Income not found", s.decode(w)["error"])

	w = s.request(http.MethodDelete, fmt.Sprintf("/income/%d", income.ID), nil, aliceToken)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/income", nil, aliceToken)
	assert.Empty(s.T(), s.decodeList(w))
}

func (s *APITestSuite) TestIncomeFilters() {
	user, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	s.seedIncome(user.ID, 2500, model.NewDate(2024, time.February, 1), "Monthly Salary", true)
	s.seedIncome(user.ID, 300, model.NewDate(2024, time.February, 15), "Freelance gig", false)
	s.seedIncome(user.ID, 2500, model.NewDate(2024, time.March, 1), "Monthly Salary", true)

	w := s.request(http.MethodGet, "/income?recurring=true", nil, token)
	assert.Len(s.T(), s.decodeList(w), 2)

	// Case-insensitive substring on source
	w = s.request(http.MethodGet, "/income?source=salary", nil, token)
	assert.Len(s.T(), s.decodeList(w), 2)

	w = s.request(http.MethodGet, "/income?month=2024-02", nil, token)
	list := s.decodeList(w)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), "Freelance gig", list[0]["source"])

	w = s.request(http.MethodGet, "/income?recurring=false&month=2024-02", nil, token)
	list = s.decodeList(w)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "Freelance gig", list[0]["source"])

	w = s.request(http.MethodGet, "/income?month=garbage", nil, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestIncomeTopCap() {
	user, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	for i := range 5 {
		date := model.Date{Time: model.NewDate(2024, time.March, 1).AddDate(0, 0, i)}
		s.seedIncome(user.ID, float64(100+i), date, fmt.Sprintf("source %d", i), false)
	}

	w := s.request(http.MethodGet, "/income?top=3", nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)

	list := s.decodeList(w)
	require.Len(s.T(), list, 3)

	// Cap applies after the date-descending sort
	assert.Equal(s.T(), "source 4", list[0]["source"])
	assert.Equal(s.T(), "source 2", list[2]["source"])

	w = s.request(http.MethodGet, "/income?top=0", nil, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APITestSuite) TestIncomeCreateValidation() {
	_, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	w := s.request(http.MethodPost, "/income", map[string]any{
		"amount": 100.0,
		"source": "Salary",
	}, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPost, "/income", map[string]any{
		"amount": 100.0,
		"date":   "2024-03-01",
	}, token)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}
