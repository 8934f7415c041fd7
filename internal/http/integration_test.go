package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sloguard/server/api"
	apihttp "github.com/sloguard/server/internal/http"
	"github.com/sloguard/server/internal/http/handlers"
	"github.com/sloguard/server/internal/store"
	"github.com/sloguard/server/pkg/budget"
	"github.com/sloguard/server/pkg/dashboard"
	"github.com/sloguard/server/pkg/downtime"
	"github.com/sloguard/server/pkg/slo"
	"github.com/stretchr/testify/assert"
)

func toJson(t *testing.T, s any) []byte {
	t.Helper()
	result, err := json.Marshal(s)
	assert.NoError(t, err, "fail to marshal to json")
	return result
}

func fromJson(t *testing.T, s any, data []byte) {
	t.Helper()
	err := json.Unmarshal(data, s)
	assert.NoError(t, err, "fail to unmarshal to json data %s", string(data))
}

func readBody(t *testing.T, body io.ReadCloser) []byte {
	b, err := io.ReadAll(body)
	defer body.Close()
	assert.NoError(t, err)
	return b
}

type testCase struct {
	url            string
	expectedStatus int
	method         string
	payload        any
	body           string
}

var baseURL = "http://127.0.0.1:10000"
var httpClient = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

func testHTTP(t *testing.T, c testCase, result any) {
	t.Helper()
	var reqBody io.Reader
	if c.payload != nil {
		reqBody = bytes.NewBuffer(toJson(t, c.payload))
	}
	request, err := http.NewRequest(
		c.method,
		fmt.Sprintf("%s%s", baseURL, c.url),
		reqBody)
	assert.NoError(t, err)
	if c.payload != nil {
		request.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	response, err := httpClient.Do(request)
	assert.NoError(t, err)
	body := readBody(t, response.Body)
	assert.Equal(t, c.expectedStatus, response.StatusCode, string(body))
	if result != nil {
		fromJson(t, result, body)
	}
	if c.body != "" {
		assert.Contains(t, string(body), c.body)
	}
}

func TestIntegration(t *testing.T) {
	reg := prometheus.NewRegistry()
	httpConfig := apihttp.Configuration{
		Host: "127.0.0.1",
		Port: 10000,
	}
	logger := slog.Default()
	memoryStore := store.New(logger)
	sloService := slo.New(logger, memoryStore, nil)
	budgetService, err := budget.New(logger, memoryStore, reg, nil)
	assert.NoError(t, err)
	downtimeService := downtime.New(logger, memoryStore, budgetService, nil)
	dashboardService := dashboard.New(logger, sloService, budgetService, downtimeService)
	handlersBuilder := handlers.NewBuilder(sloService, downtimeService, budgetService, dashboardService)
	server, err := apihttp.NewServer(logger, httpConfig, reg, handlersBuilder, false)
	assert.NoError(t, err)

	server.Start()
	defer func() {
		assert.NoError(t, server.Stop())
	}()
	time.Sleep(1 * time.Second)

	// SLO registry

	var created api.SLO
	testHTTP(t, testCase{
		url:            "/api/v1/slo",
		method:         "POST",
		expectedStatus: 201,
		payload: api.CreateSLOInput{
			Name:        "checkout-availability",
			Service:     "checkout",
			Target:      99.9,
			WindowDays:  30,
			Description: "availability of the checkout flow",
		},
	}, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "availability", created.MetricType)

	testHTTP(t, testCase{
		url:            "/api/v1/slo",
		method:         "POST",
		expectedStatus: 400,
		payload: api.CreateSLOInput{
			Name:       "invalid",
			Service:    "checkout",
			Target:     0,
			WindowDays: 30,
		},
	}, nil)

	var fetched api.SLO
	testHTTP(t, testCase{
		url:            "/api/v1/slo/" + created.ID,
		method:         "GET",
		expectedStatus: 200,
	}, &fetched)
	assert.Equal(t, created.ID, fetched.ID)

	testHTTP(t, testCase{
		url:            "/api/v1/slo/b5b24614-c4b1-4a26-8f9f-48a013a36d9e",
		method:         "GET",
		expectedStatus: 404,
	}, nil)

	var list api.ListSLOsOutput
	testHTTP(t, testCase{
		url:            "/api/v1/slo",
		method:         "GET",
		expectedStatus: 200,
	}, &list)
	assert.Len(t, list.Result, 1)

	newName := "checkout-availability-v2"
	var updated api.SLO
	testHTTP(t, testCase{
		url:            "/api/v1/slo/" + created.ID,
		method:         "PUT",
		expectedStatus: 200,
		payload: api.UpdateSLOInput{
			Name: &newName,
		},
	}, &updated)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, 99.9, updated.Target)

	// downtime and breaches

	var breach api.Breach
	testHTTP(t, testCase{
		url:            "/api/v1/downtime",
		method:         "POST",
		expectedStatus: 201,
		payload: api.RecordDowntimeInput{
			SLOID:           created.ID,
			DurationMinutes: 50,
			Description:     "full outage",
		},
	}, &breach)
	assert.Equal(t, created.ID, breach.SLOID)
	assert.Equal(t, "critical", breach.Severity)
	assert.True(t, breach.AutoEscalated)

	testHTTP(t, testCase{
		url:            "/api/v1/downtime",
		method:         "POST",
		expectedStatus: 404,
		payload: api.RecordDowntimeInput{
			SLOID:           "b5b24614-c4b1-4a26-8f9f-48a013a36d9e",
			DurationMinutes: 1,
		},
	}, nil)

	var errorBudget api.ErrorBudget
	testHTTP(t, testCase{
		url:            "/api/v1/budget/" + created.ID,
		method:         "GET",
		expectedStatus: 200,
	}, &errorBudget)
	assert.Equal(t, 43.2, errorBudget.TotalMinutes)
	assert.Equal(t, 0.0, errorBudget.RemainingMinutes)
	assert.Equal(t, "exhausted", errorBudget.Status)

	var breaches api.ListBreachesOutput
	testHTTP(t, testCase{
		url:            "/api/v1/breach?slo-id=" + created.ID,
		method:         "GET",
		expectedStatus: 200,
	}, &breaches)
	assert.Len(t, breaches.Result, 1)

	var check api.CheckBreachOutput
	testHTTP(t, testCase{
		url:            "/api/v1/breach/check/" + created.ID,
		method:         "GET",
		expectedStatus: 200,
	}, &check)
	assert.True(t, check.Breached)

	var escalation api.Escalation
	testHTTP(t, testCase{
		url:            "/api/v1/escalation/" + created.ID,
		method:         "POST",
		expectedStatus: 200,
	}, &escalation)
	assert.Equal(t, "page_oncall", escalation.Action)
	assert.Equal(t, "P1", escalation.Priority)
	assert.Len(t, escalation.NotifyTargets, 3)

	var dashboardResult api.Dashboard
	testHTTP(t, testCase{
		url:            "/api/v1/dashboard",
		method:         "GET",
		expectedStatus: 200,
	}, &dashboardResult)
	assert.Equal(t, "critical", dashboardResult.OverallHealth)
	assert.Len(t, dashboardResult.SLOs, 1)
	assert.Equal(t, 1, dashboardResult.BudgetSummary.Exhausted)
	assert.Len(t, dashboardResult.RecentBreaches, 1)

	// deleting the SLO keeps the breach history readable

	testHTTP(t, testCase{
		url:            "/api/v1/slo/" + created.ID,
		method:         "DELETE",
		expectedStatus: 200,
	}, nil)

	testHTTP(t, testCase{
		url:            "/api/v1/budget/" + created.ID,
		method:         "GET",
		expectedStatus: 404,
	}, nil)

	testHTTP(t, testCase{
		url:            "/api/v1/breach?slo-id=" + created.ID,
		method:         "GET",
		expectedStatus: 200,
	}, &breaches)
	assert.Len(t, breaches.Result, 1)
}
