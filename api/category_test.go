package api

import (
	"net/http"
	"time"

	"budgetbuddy/finance-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *APITestSuite) TestCategoryExpenseReport() {
	user, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	s.seedExpense(user.ID, 10, model.NewDate(2024, time.March, 1), "one", false, "Groceries")
	s.seedExpense(user.ID, 15.5, model.NewDate(2024, time.March, 2), "two", false, "Groceries")

	// A category nothing points at must still show up with a 0 total
	empty := model.Category{Name: "Savings", Icon: "bank", Color: "#ff0", Budget: 500}
	require.NoError(s.T(), s.api.DB.Create(&empty).Error)

	w := s.request(http.MethodGet, "/category_expense", nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)

	totals := map[string]float64{}
	for _, row := range s.decodeList(w) {
		totals[row["name"].(string)] = row["expense"].(float64)
	}

	assert.Equal(s.T(), 25.5, totals["Groceries"])
	assert.Equal(s.T(), float64(0), totals["Savings"])
}

func (s *APITestSuite) TestCategoryListAndBudgets() {
	_, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	require.NoError(s.T(), s.api.DB.Create(&model.Category{Name: "Rent", Icon: "home", Color: "#aaa", Budget: 1200}).Error)

	for _, path := range []string{"/categories", "/category_budget"} {
		w := s.request(http.MethodGet, path, nil, token)
		require.Equal(s.T(), http.StatusOK, w.Code, path)

		list := s.decodeList(w)
		require.Len(s.T(), list, 1, path)
		assert.Equal(s.T(), "Rent", list[0]["name"], path)
		assert.Equal(s.T(), float64(1200), list[0]["budget"], path)
	}
}

func (s *APITestSuite) TestTestimonialList() {
	_, token := s.verifiedUser("alice", "a@x.com", "+123456789012")

	require.NoError(s.T(), s.api.DB.Create(&model.Testimonial{
		Name:   "Dana",
		Role:   "Freelancer",
		Quote:  "Finally know where my money goes.",
		Rating: 5,
	}).Error)

	w := s.request(http.MethodGet, "/testimonials", nil, token)
	require.Equal(s.T(), http.StatusOK, w.Code)

	list := s.decodeList(w)
	require.Len(s.T(), list, 1)
	assert.Equal(s.T(), "Dana", list[0]["name"])
	assert.Equal(s.T(), float64(5), list[0]["rating"])
}
