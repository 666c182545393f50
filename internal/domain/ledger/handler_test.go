package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*echo.Echo, *Handler, *Service) {
	e := echo.New()
	svc, _ := newTestLedger()
	return e, NewHandler(svc), svc
}

func TestHandlerCreatePurchase(t *testing.T) {
	e, h, _ := newTestHandler()

	body := `{"customer_name":"Rahim","pharmacy_name":"Lazz Pharma (Uttara)","medicine_name":"Napa Extend","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreatePurchase(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var got PurchaseRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalPrice != 12.00 {
		t.Errorf("expected total 12.00, got %f", got.TotalPrice)
	}
}

func TestHandlerCreatePurchase_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"unknown medicine", `{"customer_name":"Rahim","pharmacy_name":"Lazz Pharma (Uttara)","medicine_name":"nope","quantity":1}`, http.StatusNotFound},
		{"insufficient stock", `{"customer_name":"Rahim","pharmacy_name":"Lazz Pharma (Uttara)","medicine_name":"Napa Extend","quantity":999}`, http.StatusConflict},
		{"zero quantity", `{"customer_name":"Rahim","pharmacy_name":"Lazz Pharma (Uttara)","medicine_name":"Napa Extend","quantity":0}`, http.StatusBadRequest},
		{"missing customer", `{"pharmacy_name":"Lazz Pharma (Uttara)","medicine_name":"Napa Extend","quantity":1}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		e, h, _ := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", strings.NewReader(tc.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.CreatePurchase(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != tc.code {
			t.Errorf("%s: expected %d HTTPError, got %v", tc.name, tc.code, err)
		}
	}
}

func TestHandlerListPurchases_DescOrder(t *testing.T) {
	e, h, svc := newTestHandler()

	for _, customer := range []string{"first", "second", "third"} {
		if _, err := svc.Purchase(context.Background(), customer, "Lazz Pharma (Uttara)", "Napa Extend", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchases?order=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPurchases(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data  []PurchaseRecord `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("expected total 3, got %d", resp.Total)
	}
	if resp.Data[0].CustomerName != "third" {
		t.Errorf("expected most recent first, got %s", resp.Data[0].CustomerName)
	}
}

func TestHandlerListPurchases_DescWithLimit(t *testing.T) {
	e, h, svc := newTestHandler()

	for _, customer := range []string{"first", "second", "third"} {
		if _, err := svc.Purchase(context.Background(), customer, "Lazz Pharma (Uttara)", "Napa Extend", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// A limited desc page must hold the newest records, not a reversed
	// slice of the oldest ones.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchases?order=desc&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPurchases(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data []PurchaseRecord `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected page of 2, got %d", len(resp.Data))
	}
	if resp.Data[0].CustomerName != "third" || resp.Data[1].CustomerName != "second" {
		t.Errorf("expected third, second, got %s, %s", resp.Data[0].CustomerName, resp.Data[1].CustomerName)
	}
}

func TestHandlerListPurchases_Pagination(t *testing.T) {
	e, h, svc := newTestHandler()

	for i := 0; i < 3; i++ {
		if _, err := svc.Purchase(context.Background(), "Rahim", "Lazz Pharma (Uttara)", "Napa Extend", 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/purchases?limit=2&offset=0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListPurchases(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp struct {
		Data    []PurchaseRecord `json:"data"`
		Total   int              `json:"total"`
		HasMore bool             `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data) != 2 || resp.Total != 3 {
		t.Errorf("expected page of 2 of 3, got len=%d total=%d", len(resp.Data), resp.Total)
	}
	if !resp.HasMore {
		t.Error("expected has_more true with a third record remaining")
	}
}
