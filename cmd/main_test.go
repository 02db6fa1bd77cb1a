package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-finance-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-finance-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-finance-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "Version: v1.0.0") ||
		!contains(output, "Commit: abcd1234") ||
		!contains(output, "Build: 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel, logFormat,
		shutdownTimeout,
		kafkaBrokers, kafkaTopic, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" || logLevel != "info" || logFormat != "json" {
		t.Errorf("unexpected app config: %v/%v/%v/%v", appHost, appPort, logLevel, logFormat)
	}
	if shutdownTimeout != 10 {
		t.Errorf("unexpected shutdown timeout: %d", shutdownTimeout)
	}
	if len(kafkaBrokers) != 0 || kafkaTopic != "finance.transactions" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaBrokers, kafkaTopic)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_LOG_FORMAT", "console")
	os.Setenv("APP_SHUTDOWN_TIMEOUT_SECOND", "3")
	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	os.Setenv("KAFKA_TOPIC", "ledger")

	appHost, appPort, logLevel, logFormat,
		shutdownTimeout,
		kafkaBrokers, kafkaTopic, err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" || logFormat != "console" {
		t.Errorf("unexpected app config")
	}
	if shutdownTimeout != 3 {
		t.Errorf("unexpected shutdown timeout: %d", shutdownTimeout)
	}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, kafkaBrokers)
	if kafkaTopic != "ledger" {
		t.Errorf("unexpected kafka topic: %s", kafkaTopic)
	}
}

func TestParseConfig_InvalidShutdownTimeout(t *testing.T) {
	resetEnv()
	os.Setenv("APP_SHUTDOWN_TIMEOUT_SECOND", "soon")

	_, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nKAFKA_BROKERS=localhost:9092\n"), 0o600))

	_, appPort, _, _, _, kafkaBrokers, _, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", appPort)
	assert.Equal(t, []string{"localhost:9092"}, kafkaBrokers)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, "127.0.0.1", "0", "debug", "console", 1, nil, "")
	}()

	select {
	case <-time.After(5 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), "127.0.0.1", "0", "loud", "json", 1, nil, "")
	assert.Error(t, err)
}

// doJSON sends a request to the router and returns the recorder.
func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_TransactionLifecycle(t *testing.T) {
	svc, err := services.NewTransactionService(repositories.NewTransactionMemoryRepository(), nil)
	require.NoError(t, err)
	router := newRouter(svc, "http://localhost:8080/swagger/doc.json")

	// Register an inflow and an outflow
	rr := doJSON(t, router, http.MethodPost, "/api/v1/transactions",
		`{"description":"Salary","amount":1000,"date":"2024-03-01","type":"Inflow","category":"Salary"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = doJSON(t, router, http.MethodPost, "/api/v1/transactions",
		`{"description":"Groceries","amount":120,"date":"2024-03-05","type":"Outflow","category":"Food"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var groceries handlers.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &groceries))
	assert.Equal(t, "-120", groceries.Amount)
	assert.Equal(t, "/api/v1/transactions/"+groceries.ID, rr.Header().Get("Location"))

	// Balance
	rr = doJSON(t, router, http.MethodGet, "/api/v1/balance", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var balance handlers.BalanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, "880", balance.Balance)

	// List, newest first
	rr = doJSON(t, router, http.MethodGet, "/api/v1/transactions", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list []handlers.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Groceries", list[0].Description)
	assert.Equal(t, "Salary", list[1].Description)

	// Filter by type
	rr = doJSON(t, router, http.MethodGet, "/api/v1/transactions?type=Inflow", "")
	require.Equal(t, http.StatusOK, rr.Code)
	list = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Salary", list[0].Description)

	// Empty match is an empty array
	rr = doJSON(t, router, http.MethodGet, "/api/v1/transactions?category=Rent", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	// Inverted date range
	rr = doJSON(t, router, http.MethodGet, "/api/v1/transactions?dateFrom=2024-03-10&dateTo=2024-03-01", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Update
	rr = doJSON(t, router, http.MethodPut, "/api/v1/transactions/"+groceries.ID,
		`{"description":"Groceries and wine","amount":100,"date":"2024-03-05","type":"Outflow","category":"Food"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated handlers.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, groceries.ID, updated.ID)
	assert.Equal(t, "-100", updated.Amount)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/balance", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, "900", balance.Balance)

	// Summary
	rr = doJSON(t, router, http.MethodGet, "/api/v1/summary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var summary handlers.SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "1000", summary.Inflows)
	assert.Equal(t, "-100", summary.Outflows)

	// Delete
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/transactions/"+groceries.ID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/transactions/"+groceries.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = doJSON(t, router, http.MethodGet, "/api/v1/transactions/"+groceries.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, router, http.MethodGet, "/api/v1/balance", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balance))
	assert.Equal(t, "1000", balance.Balance)
}

func TestRouter_Swagger(t *testing.T) {
	svc, err := services.NewTransactionService(repositories.NewTransactionMemoryRepository(), nil)
	require.NoError(t, err)
	router := newRouter(svc, "http://localhost:8080/swagger/doc.json")

	rr := doJSON(t, router, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/transactions/{id}")
}
