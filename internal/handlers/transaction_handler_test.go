package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "kexpay/internal/errors"
	"kexpay/internal/metrics"
	"kexpay/internal/models"
	"kexpay/internal/pagination"
	"kexpay/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn     func(description, category string, amount int64, transactionType models.TransactionType, account, date, timeOfDay string) (*models.Transaction, error)
	quickAddTransactionFn   func(text, category string) (*models.Transaction, error)
	getTransactionsFn       func(filter metrics.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error)
	getRecentTransactionsFn func(limit int) (*services.RecentTransactions, error)
	deleteTransactionFn     func(transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(description, category string, amount int64, transactionType models.TransactionType, account, date, timeOfDay string) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(description, category, amount, transactionType, account, date, timeOfDay)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) QuickAddTransaction(text, category string) (*models.Transaction, error) {
	if m.quickAddTransactionFn != nil {
		return m.quickAddTransactionFn(text, category)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(filter metrics.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(filter, page)
	}
	return &services.TransactionList{PageResponse: pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)}, nil
}

func (m *mockTransactionService) GetRecentTransactions(limit int) (*services.RecentTransactions, error) {
	if m.getRecentTransactionsFn != nil {
		return m.getRecentTransactionsFn(limit)
	}
	return &services.RecentTransactions{}, nil
}

func (m *mockTransactionService) DeleteTransaction(transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/transactions", handler.CreateTransaction)
	r.POST("/transactions/quick", handler.QuickAddTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/recent", handler.GetRecentTransactions)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(description, category string, amount int64, transactionType models.TransactionType, account, date, _ string) (*models.Transaction, error) {
				return &models.Transaction{
					Base:        models.Base{ID: testID},
					Description: description,
					Category:    category,
					Amount:      amount,
					Type:        transactionType,
					Account:     account,
					Date:        date,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))

		rec := doRequest(r, "POST", "/transactions",
			`{"description":"Rent","category":"Housing","amount":2500000,"type":"expense","account":"HDFC","date":"2026-02-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["description"] != "Rent" {
			t.Errorf("expected Rent, got %v", tx["description"])
		}
		if tx["amount"].(float64) != 2500000 {
			t.Errorf("expected amount 2500000, got %v", tx["amount"])
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing description", `{"category":"Housing","amount":100,"type":"expense"}`},
		{"unknown category", `{"description":"x","category":"Bills","amount":100,"type":"expense"}`},
		{"zero amount", `{"description":"x","category":"Housing","amount":0,"type":"expense"}`},
		{"amount above max", `{"description":"x","category":"Housing","amount":1000000000001,"type":"expense"}`},
		{"bad type", `{"description":"x","category":"Housing","amount":100,"type":"transfer"}`},
		{"bad date", `{"description":"x","category":"Housing","amount":100,"type":"expense","date":"01/02/2026"}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
			rec := doRequest(r, "POST", "/transactions", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("propagates service error", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(string, string, int64, models.TransactionType, string, string, string) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))
		rec := doRequest(r, "POST", "/transactions", `{"description":"x","category":"Housing","amount":1,"type":"income"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})
}

func TestTransactionHandler_QuickAddTransaction(t *testing.T) {
	t.Run("passes text and category through", func(t *testing.T) {
		var gotText, gotCategory string
		svc := &mockTransactionService{
			quickAddTransactionFn: func(text, category string) (*models.Transaction, error) {
				gotText, gotCategory = text, category
				return &models.Transaction{Description: "Coffee", Amount: 12000}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))

		rec := doRequest(r, "POST", "/transactions/quick", `{"text":"Coffee 120","category":"Food & Dining"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotText != "Coffee 120" || gotCategory != "Food & Dining" {
			t.Errorf("unexpected arguments %q %q", gotText, gotCategory)
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "POST", "/transactions/quick", `{"text":"Coffee 120","category":"Snacks"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when unparseable", func(t *testing.T) {
		svc := &mockTransactionService{
			quickAddTransactionFn: func(string, string) (*models.Transaction, error) {
				return nil, apperrors.ErrQuickAddUnparseable
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))
		rec := doRequest(r, "POST", "/transactions/quick", `{"text":"Coffee"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "QUICK_ADD_UNPARSEABLE")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("binds filters and page", func(t *testing.T) {
		var gotFilter metrics.TransactionFilter
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			getTransactionsFn: func(filter metrics.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error) {
				gotFilter, gotPage = filter, page
				return &services.TransactionList{
					PageResponse: pagination.NewPageResponse([]models.Transaction{{Description: "Swiggy"}}, 2, 10, 11),
					Totals:       metrics.Totals{TotalExpense: 500, Balance: -500},
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))

		rec := doRequest(r, "GET", "/transactions?category=Groceries&type=expense&search=swig&page=2&page_size=10", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Category != "Groceries" || gotFilter.Type != models.TransactionTypeExpense || gotFilter.Search != "swig" {
			t.Errorf("unexpected filter %+v", gotFilter)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 10 {
			t.Errorf("unexpected page %+v", gotPage)
		}

		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 11 {
			t.Errorf("expected total_items 11, got %v", result["total_items"])
		}
		totals := result["totals"].(map[string]interface{})
		if totals["balance"].(float64) != -500 {
			t.Errorf("expected balance -500, got %v", totals["balance"])
		}
	})

	t.Run("accepts All category", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "GET", "/transactions?category=All", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "GET", "/transactions?category=Bills", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CATEGORY")
	})

	t.Run("rejects bad type", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "GET", "/transactions?type=transfer", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects oversized page", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "GET", "/transactions?page_size=500", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_GetRecentTransactions(t *testing.T) {
	t.Run("uses configured default limit", func(t *testing.T) {
		var gotLimit int
		svc := &mockTransactionService{
			getRecentTransactionsFn: func(limit int) (*services.RecentTransactions, error) {
				gotLimit = limit
				return &services.RecentTransactions{Expenses: []models.Transaction{}, Income: []models.Transaction{}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 7))

		rec := doRequest(r, "GET", "/transactions/recent", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotLimit != 7 {
			t.Errorf("expected limit 7, got %d", gotLimit)
		}

		doRequest(r, "GET", "/transactions/recent?limit=3", "")
		if gotLimit != 3 {
			t.Errorf("expected limit 3, got %d", gotLimit)
		}
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "GET", "/transactions/recent?limit=abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID string
		svc := &mockTransactionService{
			deleteTransactionFn: func(id string) error {
				gotID = id
				return nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))
		rec := doRequest(r, "DELETE", "/transactions/"+testID, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotID != testID {
			t.Errorf("expected id %s, got %s", testID, gotID)
		}
	})

	t.Run("returns 400 on invalid id", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, 5))
		rec := doRequest(r, "DELETE", "/transactions/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteTransactionFn: func(string) error { return apperrors.ErrTransactionNotFound },
		}
		r := setupTransactionRouter(NewTransactionHandler(svc, 5))
		rec := doRequest(r, "DELETE", "/transactions/"+testID, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}
