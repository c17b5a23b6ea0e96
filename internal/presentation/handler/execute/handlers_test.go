package execute

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	raws []string
}

func (f *fakeExecutor) Execute(_ context.Context, raw string) domain.Report {
	f.raws = append(f.raws, raw)
	return domain.Report{
		ExecutionID:        "exec-1",
		Status:             domain.StatusActionCommenced,
		IntelligenceReport: "report for " + raw,
		WorldContext:       "context",
		SystemHealth:       "100% Optimal",
	}
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ExecuteHandler(rec, req)
	return rec
}

func TestExecuteHandler(t *testing.T) {
	exec := &fakeExecutor{}
	h := NewHandler(exec)

	rec := post(h, `{"intent":"  deploy  "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "exec-1", rec.Header().Get(ExecutionIDHeader))

	var body executeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, executeResponse{
		Status:             domain.StatusActionCommenced,
		IntelligenceReport: "report for   deploy  ",
		WorldContext:       "context",
		SystemHealth:       "100% Optimal",
	}, body)
	assert.Equal(t, []string{"  deploy  "}, exec.raws)
}

func TestExecuteHandlerEmptyIntentIsAccepted(t *testing.T) {
	exec := &fakeExecutor{}

	rec := post(NewHandler(exec), `{"intent":""}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{""}, exec.raws)
}

func TestExecuteHandlerRejectsBadRequests(t *testing.T) {
	tests := map[string]string{
		"missing intent": `{"other":"x"}`,
		"not json":       `intent=deploy`,
		"empty body":     ``,
		"wrong type":     `{"intent":42}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			exec := &fakeExecutor{}

			rec := post(NewHandler(exec), body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"Bad Request"`)
			assert.Empty(t, exec.raws)
		})
	}
}
