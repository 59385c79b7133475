package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"baniya/internal/core"
	"baniya/internal/services"
)

type fakeLedger struct {
	funds    map[string]core.Fund
	deposits map[string][]core.Deposit
	err      error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{funds: make(map[string]core.Fund), deposits: make(map[string][]core.Deposit)}
}

func (f *fakeLedger) GetFund(_ context.Context, user string) (core.Fund, error) {
	if f.err != nil {
		return core.Fund{}, f.err
	}
	if fund, ok := f.funds[user]; ok {
		return fund, nil
	}
	return core.ZeroFund(time.Now()), nil
}

func (f *fakeLedger) AddFund(_ context.Context, user string, amount float64) (core.Fund, error) {
	if f.err != nil {
		return core.Fund{}, f.err
	}
	fund := f.funds[user]
	fund.TotalSaved += amount
	fund.Transactions++
	fund.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	f.funds[user] = fund
	return fund, nil
}

func (f *fakeLedger) ListDeposits(_ context.Context, user string) ([]core.Deposit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.deposits[user], nil
}

type fakeAnalyzer struct {
	result services.QCommerceResult
	err    error
	got    []byte
}

func (f *fakeAnalyzer) Analyze(_ context.Context, data []byte) (services.QCommerceResult, error) {
	f.got = data
	return f.result, f.err
}

func newTestServer(ledger FundLedger, analyzer ReceiptAnalyzer) *Server {
	return NewServer(":0", ledger, analyzer, []string{"*"}, "demo")
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Handler.ServeHTTP(rr, req)
	return rr
}

func TestRootAndHealth(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("root status=%d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode root: %v", err)
	}
	if body["message"] != "Baniya.ai API" {
		t.Fatalf("unexpected message %q", body["message"])
	}

	rr = doRequest(srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", rr.Code)
	}
}

func TestUnknownAPIPath(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})
	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := NewServer(":0", newFakeLedger(), &fakeAnalyzer{}, []string{"https://app.example.com"}, "demo")

	req := httptest.NewRequest(http.MethodOptions, "/api/cc-helper/recommend", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := doRequest(srv, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("preflight status=%d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("allow-origin=%q", got)
	}

	// Unlisted origin gets no CORS headers.
	req = httptest.NewRequest(http.MethodOptions, "/api/cc-helper/recommend", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = doRequest(srv, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow-origin %q for unlisted origin", got)
	}
}

func TestRecommendValidation(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	// Wrong method
	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/cc-helper/recommend", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Malformed body
	rr = doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/cc-helper/recommend", strings.NewReader("{not json")))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	// Missing field
	rr = doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/cc-helper/recommend",
		strings.NewReader(`{"grocery": 1000, "dining": 1000, "travel": 1000, "shopping": 1000}`)))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing field, got %d", rr.Code)
	}

	// Negative spend
	rr = doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/cc-helper/recommend",
		strings.NewReader(`{"grocery": -5, "dining": 0, "travel": 0, "shopping": 0, "utilities": 0}`)))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for negative spend, got %d", rr.Code)
	}
}

func TestRecommendSuccess(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/cc-helper/recommend",
		strings.NewReader(`{"grocery": 6000, "dining": 4000, "travel": 6000, "shopping": 9000, "utilities": 3000}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}

	var recs []core.Recommendation
	if err := json.Unmarshal(rr.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) == 0 || len(recs) > 5 {
		t.Fatalf("expected 1..5 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		if rec.MatchScore < 1 || rec.MatchScore > 100 {
			t.Errorf("score out of range: %d", rec.MatchScore)
		}
		if i > 0 && rec.MatchScore > recs[i-1].MatchScore {
			t.Errorf("not sorted at %d", i)
		}
	}
}

func TestSalesPredictions(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/sales/predictions?platform=amazon", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var events []core.SaleEvent
	if err := json.Unmarshal(rr.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 Amazon events, got %d", len(events))
	}
	for _, e := range events {
		if e.Platform != "Amazon" {
			t.Errorf("got platform %s", e.Platform)
		}
	}

	rr = doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/sales/predictions?platform=nowhere", nil))
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}

func TestFundGetDefaultsToDemo(t *testing.T) {
	ledger := newFakeLedger()
	ledger.funds["demo"] = core.Fund{TotalSaved: 42, Transactions: 3, LastUpdated: "2025-01-01T00:00:00Z"}
	srv := newTestServer(ledger, &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/shaadi-fund", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var fund core.Fund
	if err := json.Unmarshal(rr.Body.Bytes(), &fund); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fund.TotalSaved != 42 || fund.Transactions != 3 {
		t.Fatalf("unexpected fund %+v", fund)
	}
}

func TestFundAdd(t *testing.T) {
	ledger := newFakeLedger()
	srv := newTestServer(ledger, &fakeAnalyzer{})

	for _, amount := range []string{"100.50", "50.25"} {
		rr := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/shaadi-fund/add?amount="+amount, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("add %s: status=%d", amount, rr.Code)
		}
	}

	var resp struct {
		Success  bool    `json:"success"`
		NewTotal float64 `json:"new_total"`
	}
	rr := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/shaadi-fund/add?amount=0.25", nil))
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.NewTotal != 151.0 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if ledger.funds["demo"].Transactions != 3 {
		t.Fatalf("expected 3 transactions, got %d", ledger.funds["demo"].Transactions)
	}
}

func TestFundAddRejectsBadAmounts(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	for _, q := range []string{"", "?amount=", "?amount=abc", "?amount=0", "?amount=-5"} {
		rr := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/shaadi-fund/add"+q, nil))
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("query %q: expected 422, got %d", q, rr.Code)
		}
	}
}

func TestFundLedgerFailure(t *testing.T) {
	ledger := newFakeLedger()
	ledger.err = errors.New("db down")
	srv := newTestServer(ledger, &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/shaadi-fund", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestFundHistory(t *testing.T) {
	ledger := newFakeLedger()
	ledger.deposits["demo"] = []core.Deposit{{ID: 2, User: "demo", Amount: 50}, {ID: 1, User: "demo", Amount: 100}}
	srv := newTestServer(ledger, &fakeAnalyzer{})

	rr := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/shaadi-fund/history", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d", rr.Code)
	}
	var deposits []core.Deposit
	if err := json.Unmarshal(rr.Body.Bytes(), &deposits); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(deposits) != 2 || deposits[0].ID != 2 {
		t.Fatalf("unexpected deposits %+v", deposits)
	}
}

func multipartImage(t *testing.T, field string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "receipt.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("image-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestAnalyzeEndpoint(t *testing.T) {
	analyzer := &fakeAnalyzer{result: services.QCommerceResult{
		Items:          []services.QCommerceItem{{Name: "Milk", BlinkitPrice: 60, BestPlatform: "Zepto", PotentialSavings: 5}},
		TotalBlinkit:   60,
		TotalSavings:   5,
		Recommendation: "Switch to Zepto to save ₹5!",
	}}
	srv := newTestServer(newFakeLedger(), analyzer)

	body, contentType := multipartImage(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/qcommerce/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := doRequest(srv, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if string(analyzer.got) != "image-bytes" {
		t.Fatalf("analyzer got %q", analyzer.got)
	}
	var result services.QCommerceResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalBlinkit != 60 || len(result.Items) != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	srv := newTestServer(newFakeLedger(), &fakeAnalyzer{})

	body, contentType := multipartImage(t, "wrong_field")
	req := httptest.NewRequest(http.MethodPost, "/api/qcommerce/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := doRequest(srv, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAnalyzeFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("model timeout")}
	srv := newTestServer(newFakeLedger(), analyzer)

	body, contentType := multipartImage(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/qcommerce/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := doRequest(srv, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var detail map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(detail["detail"], "Analysis failed: ") {
		t.Fatalf("unexpected detail %q", detail["detail"])
	}
}
