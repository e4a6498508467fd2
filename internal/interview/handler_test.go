package interview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interviewcoach/internal/completion"
	"interviewcoach/internal/httputil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	polymorphismBody  = `{"question":"What is polymorphism?","answer":"It lets objects of different types respond to the same call.","timeTaken":45}`
	wellFormedReply   = `{"analysis":{"score":80,"clarity":75,"conciseness":70,"structure":78,"fillers":2,"words":15},"feedback":"Good, but add an example.","followup":"Can you give a code example?","serverReply":"Solid answer."}`
	embeddedObject    = `{"analysis":{"score":50,"clarity":50,"conciseness":50,"structure":50,"fillers":0,"words":10},"feedback":"ok","followup":"why?","serverReply":"ok"}`
	proseWrappedReply = `Sure! Here you go: ` + embeddedObject + ` Hope that helps!`
)

type stubClient struct {
	text  string
	err   error
	calls int
	last  completion.Request
}

func (s *stubClient) Complete(_ context.Context, req completion.Request) (string, error) {
	s.calls++
	s.last = req
	return s.text, s.err
}

func setupRouter(client completion.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httputil.RequestID())
	r.POST("/api/interview", Handler(client))
	return r
}

func postInterview(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/interview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInterviewHandler_MissingFieldsReturn400(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "empty object", body: `{}`},
		{name: "missing answer", body: `{"question":"What is a mutex?"}`},
		{name: "missing question", body: `{"answer":"A lock."}`},
		{name: "empty question", body: `{"question":"","answer":"A lock."}`},
		{name: "empty answer", body: `{"question":"What is a mutex?","answer":""}`},
		{name: "malformed json", body: `{"question":"What`},
		{name: "non-string question", body: `{"question":1,"answer":true}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{text: wellFormedReply}
			w := postInterview(t, setupRouter(stub), tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"question and answer required"}`, w.Body.String())
			assert.Zero(t, stub.calls, "completion client must not be called")
		})
	}
}

func TestInterviewHandler_OversizedBodyReturns400(t *testing.T) {
	stub := &stubClient{text: wellFormedReply}
	body := `{"question":"q","answer":"` + strings.Repeat("a", 2<<20) + `"}`
	w := postInterview(t, setupRouter(stub), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"question and answer required"}`, w.Body.String())
	assert.Zero(t, stub.calls)
}

func TestInterviewHandler_WellFormedReply(t *testing.T) {
	stub := &stubClient{text: wellFormedReply}
	w := postInterview(t, setupRouter(stub), polymorphismBody)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, wellFormedReply, w.Body.String())

	require.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.last.User, "Question: What is polymorphism?")
	assert.Contains(t, stub.last.User, "Candidate answer: It lets objects of different types respond to the same call.")
	assert.Contains(t, stub.last.User, "Time taken (s): 45\n")
}

func TestInterviewHandler_ExtractsObjectFromProse(t *testing.T) {
	stub := &stubClient{text: proseWrappedReply}
	w := postInterview(t, setupRouter(stub), polymorphismBody)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, embeddedObject, w.Body.String())
}

func TestInterviewHandler_UnparsedReplyReturnsSentinel(t *testing.T) {
	stub := &stubClient{text: "I think this answer is good overall."}
	w := postInterview(t, setupRouter(stub), polymorphismBody)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t,
		`{"analysis":{},"feedback":null,"followup":null,"serverReply":"I think this answer is good overall."}`,
		w.Body.String())
}

func TestInterviewHandler_BackendErrorReturns500(t *testing.T) {
	stub := &stubClient{err: &completion.BackendError{Provider: "openai", Err: errors.New("dial tcp: connection refused")}}
	w := postInterview(t, setupRouter(stub), polymorphismBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"backend_error","detail":"dial tcp: connection refused"}`, w.Body.String())
}

func TestInterviewHandler_AnyClientErrorReturns500(t *testing.T) {
	client := completion.ClientFunc(func(context.Context, completion.Request) (string, error) {
		return "", errors.New("simulated network failure")
	})
	w := postInterview(t, setupRouter(client), polymorphismBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"backend_error","detail":"simulated network failure"}`, w.Body.String())
}

func TestInterviewHandler_Idempotent(t *testing.T) {
	for _, text := range []string{wellFormedReply, proseWrappedReply, "not json"} {
		stub := &stubClient{text: text}
		r := setupRouter(stub)

		first := postInterview(t, r, polymorphismBody)
		second := postInterview(t, r, polymorphismBody)

		assert.Equal(t, first.Code, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	}
}

func TestInterviewHandler_NullTimeTaken(t *testing.T) {
	stub := &stubClient{text: wellFormedReply}
	w := postInterview(t, setupRouter(stub), `{"question":"q","answer":"a","timeTaken":null}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, stub.last.User, "Time taken (s): null\n")
}

func TestInterviewHandler_NonNumericTimeTakenPassesThrough(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "string", body: `{"question":"What is a mutex?","answer":"A lock.","timeTaken":"45"}`, want: "Time taken (s): 45\n"},
		{name: "absent", body: `{"question":"What is a mutex?","answer":"A lock."}`, want: "Time taken (s): null\n"},
		{name: "bool", body: `{"question":"What is a mutex?","answer":"A lock.","timeTaken":false}`, want: "Time taken (s): false\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubClient{text: wellFormedReply}
			w := postInterview(t, setupRouter(stub), tc.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			require.Equal(t, 1, stub.calls)
			assert.Contains(t, stub.last.User, tc.want)
		})
	}
}

func TestInterviewHandler_PartialAnalysisNotZeroFilled(t *testing.T) {
	stub := &stubClient{text: `{"analysis":{"score":80},"feedback":"ok","followup":"why?","serverReply":"ok"}`}
	w := postInterview(t, setupRouter(stub), polymorphismBody)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"analysis":{"score":80},"feedback":"ok","followup":"why?","serverReply":"ok"}`, w.Body.String())
}

func TestInterviewHandler_EchoesRequestID(t *testing.T) {
	stub := &stubClient{text: wellFormedReply}
	req := httptest.NewRequest(http.MethodPost, "/api/interview", strings.NewReader(polymorphismBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httputil.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	setupRouter(stub).ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(httputil.RequestIDHeader))
}
