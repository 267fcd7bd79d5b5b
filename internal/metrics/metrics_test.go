package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "success", err: nil, expected: "ok"},
		{name: "refusal", err: apperr.Refused("no hit dice remaining"), expected: "refused"},
		{name: "invalid", err: apperr.InvalidArgument("unknown attack"), expected: "invalid"},
		{name: "not found", err: apperr.NotFoundf("missing"), expected: "not_found"},
		{name: "unavailable", err: apperr.Unavailablef("no token"), expected: "unavailable"},
		{name: "decode", err: apperr.WrapWithCode(errors.New("bad json"), apperr.CodeDecode, "decode"), expected: "decode"},
		{name: "plain", err: errors.New("boom"), expected: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Result(tt.err))
		})
	}
}

func TestObserveAction(t *testing.T) {
	before := testutil.ToFloat64(actionsTotal.WithLabelValues("long_rest", "ok"))

	ObserveAction("long_rest", nil)
	ObserveAction("long_rest", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(actionsTotal.WithLabelValues("long_rest", "ok")))
}

func TestObserveGateway(t *testing.T) {
	before := testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues(GatewayGitHub, "unavailable"))

	ObserveGateway(GatewayGitHub, time.Now(), apperr.Unavailablef("no token"))

	assert.Equal(t, before+1, testutil.ToFloat64(gatewayRequestsTotal.WithLabelValues(GatewayGitHub, "unavailable")))
}

func TestHandler(t *testing.T) {
	ObserveAction("attack", nil)

	server := httptest.NewServer(NewHandler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "aegis_actions_total")

	health, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)
}
