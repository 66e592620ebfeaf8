package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-system/internal/api/middleware"
	"github.com/mywallet/wallet-system/internal/core/domain"
)

type stubRecordService struct {
	listFn   func(ctx context.Context, token string) (*domain.Statement, error)
	createFn func(ctx context.Context, token, description string, value int64) error
}

func (s *stubRecordService) ListForToken(ctx context.Context, token string) (*domain.Statement, error) {
	return s.listFn(ctx, token)
}

func (s *stubRecordService) Create(ctx context.Context, token, description string, value int64) error {
	return s.createFn(ctx, token, description, value)
}

func recordContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/records", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.TokenContextKey, "tok")
	return c, rec
}

func TestRecordHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	date := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	stub := &stubRecordService{
		listFn: func(ctx context.Context, token string) (*domain.Statement, error) {
			if token != "tok" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.Statement{
				OwnerName: "Ana",
				Records: []domain.Record{
					{UserID: 1, Date: date, Description: "coffee", Value: 100},
				},
			}, nil
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodGet, "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Records []map[string]any `json:"records"`
		Name    string           `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Name != "Ana" {
		t.Fatalf("unexpected name: %q", resp.Name)
	}
	if len(resp.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.Records))
	}
	r := resp.Records[0]
	if r["description"] != "coffee" || r["value"] != float64(100) || r["userId"] != float64(1) {
		t.Fatalf("unexpected record payload: %+v", r)
	}
}

func TestRecordHandler_List_EmptyLedger(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		listFn: func(ctx context.Context, token string) (*domain.Statement, error) {
			return &domain.Statement{OwnerName: "Ana", Records: []domain.Record{}}, nil
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodGet, "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("an empty ledger is 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"records":[]`) {
		t.Fatalf("expected an empty records array, got %s", body)
	}
	if !strings.Contains(body, `"name":"Ana"`) {
		t.Fatalf("expected the owner name, got %s", body)
	}
}

func TestRecordHandler_List_UnknownToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		listFn: func(ctx context.Context, token string) (*domain.Statement, error) {
			return nil, domain.ErrSessionNotFound
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodGet, "")
	_ = handler.List(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRecordHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	var gotDescription string
	var gotValue int64
	stub := &stubRecordService{
		createFn: func(ctx context.Context, token, description string, value int64) error {
			gotDescription = description
			gotValue = value
			return nil
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodPost, `{"value":100,"description":"coffee"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotDescription != "coffee" || gotValue != 100 {
		t.Fatalf("unexpected args: %q %d", gotDescription, gotValue)
	}
}

func TestRecordHandler_Create_LargeValue(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		createFn: func(ctx context.Context, token, description string, value int64) error {
			if value != 1000000 {
				t.Fatalf("unexpected value: %d", value)
			}
			return nil
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodPost, `{"value":1000000,"description":"rent"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRecordHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		createFn: func(ctx context.Context, token, description string, value int64) error {
			t.Fatalf("service must not be called")
			return nil
		},
	}
	handler := NewRecordHandler(stub)

	cases := map[string]string{
		"missing value":       `{"description":"coffee"}`,
		"zero value":          `{"value":0,"description":"coffee"}`,
		"negative value":      `{"value":-1,"description":"coffee"}`,
		"string value":        `{"value":"abc","description":"coffee"}`,
		"float value":         `{"value":1.5,"description":"coffee"}`,
		"missing description": `{"value":100}`,
		"empty description":   `{"value":100,"description":""}`,
		"markup description":  `{"value":100,"description":"<b></b>"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := recordContext(e, http.MethodPost, body)
			_ = handler.Create(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestRecordHandler_Create_UnknownToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		createFn: func(ctx context.Context, token, description string, value int64) error {
			return domain.ErrSessionNotFound
		},
	}
	handler := NewRecordHandler(stub)

	c, rec := recordContext(e, http.MethodPost, `{"value":100,"description":"coffee"}`)
	_ = handler.Create(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRecordHandler_MissingToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubRecordService{
		listFn: func(ctx context.Context, token string) (*domain.Statement, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}
	handler := NewRecordHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}
