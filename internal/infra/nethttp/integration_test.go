package nethttp_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bool64/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/assertjson"

	"todograph/internal/domain/todo"
	"todograph/internal/infra"
	"todograph/internal/infra/nethttp"
	"todograph/internal/infra/service"
)

func postGraph(t *testing.T, baseURL, reqBody string) (int, []byte) {
	t.Helper()

	resp, err := http.Post(baseURL+"/graph", "application/json", bytes.NewReader([]byte(reqBody)))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp.StatusCode, body
}

func Test_graphLifeSpan(t *testing.T) {
	l := infra.NewServiceLocator(service.Config{SeedDemoData: true})
	defer l.Close()

	srv := httptest.NewServer(nethttp.NewRouter(l))
	defer srv.Close()

	code, body := postGraph(t, srv.URL, `{"operations":[{"op":"todos"}]}`)
	assert.Equal(t, http.StatusOK, code)
	assertjson.Equal(t, []byte(`{"data":{"todos":[{"id":"<ignore-diff>","title":"Buy milk","completed":false}]}}`), body)

	var listed struct {
		Data struct {
			Todos []todo.Entity `json:"todos"`
		} `json:"data"`
	}

	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed.Data.Todos, 1)
	seedID := listed.Data.Todos[0].ID

	code, body = postGraph(t, srv.URL, `{"operations":[
		{"op":"createTodo","args":{"title":"Eggs"}},
		{"op":"toggleTodo","args":{"id":"`+seedID+`"}}
	]}`)
	assert.Equal(t, http.StatusOK, code)
	assertjson.Equal(t, []byte(`{"data":{
		"createTodo":{"id":"<ignore-diff>","title":"Eggs","completed":false},
		"toggleTodo":{"id":"`+seedID+`","title":"Buy milk","completed":true}
	}}`), body)

	var created struct {
		Data struct {
			CreateTodo todo.Entity `json:"createTodo"`
		} `json:"data"`
	}

	require.NoError(t, json.Unmarshal(body, &created))
	eggsID := created.Data.CreateTodo.ID

	code, body = postGraph(t, srv.URL, `{"operations":[{"op":"deleteTodo","args":{"id":"`+eggsID+`"}}]}`)
	assert.Equal(t, http.StatusOK, code)
	assertjson.Equal(t, []byte(`{"data":{"deleteTodo":true}}`), body)

	code, body = postGraph(t, srv.URL, `{"operations":[
		{"op":"todo","alias":"gone","args":{"id":"`+eggsID+`"}},
		{"op":"deleteTodo","args":{"id":"`+eggsID+`"}},
		{"op":"todos"}
	]}`)
	assert.Equal(t, http.StatusOK, code)
	assertjson.Equal(t, []byte(`{"data":{
		"gone":null,
		"deleteTodo":false,
		"todos":[{"id":"`+seedID+`","title":"Buy milk","completed":true}]
	}}`), body)
}

func Test_graph_badRequest(t *testing.T) {
	l := infra.NewServiceLocator(service.Config{})
	defer l.Close()

	srv := httptest.NewServer(nethttp.NewRouter(l))
	defer srv.Close()

	var errResp struct {
		Status string `json:"status"`
	}

	// Empty operation batch is rejected at the request boundary.
	code, body := postGraph(t, srv.URL, `{"operations":[]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, "INVALID_ARGUMENT", errResp.Status)

	// Per-operation failures still come back as 200 with structured errors.
	code, body = postGraph(t, srv.URL, `{"operations":[{"op":"createTodo","args":{"title":""}}]}`)
	assert.Equal(t, http.StatusOK, code)
	assertjson.Equal(t, []byte(`{
		"data":{"createTodo":null},
		"errors":[{"op":"createTodo","status":"INVALID_ARGUMENT","error":"invalid argument: title is empty"}]
	}`), body)
}

func Test_graph_concurrentCreate(t *testing.T) {
	l := infra.NewServiceLocator(service.Config{})
	defer l.Close()

	srv := httptest.NewServer(nethttp.NewRouter(l))
	defer srv.Close()

	rc := httpmock.NewClient(srv.URL)

	rc.WithMethod(http.MethodPost).WithURI("/graph").
		WithContentType("application/json").
		WithBody([]byte(`{"operations":[{"op":"createTodo","args":{"title":"Eggs"}}]}`)).
		Concurrently()

	assert.NoError(t, rc.ExpectResponseStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectResponseBody([]byte(`{"data":{"createTodo":{"id":"<ignore-diff>","title":"Eggs","completed":false}}}`)))
	assert.NoError(t, rc.ExpectOtherResponsesStatus(http.StatusOK))
	assert.NoError(t, rc.ExpectOtherResponsesBody([]byte(`{"data":{"createTodo":{"id":"<ignore-diff>","title":"Eggs","completed":false}}}`)))

	// Concurrent creates never produce duplicate ids.
	code, body := postGraph(t, srv.URL, `{"operations":[{"op":"todos"}]}`)
	assert.Equal(t, http.StatusOK, code)

	var listed struct {
		Data struct {
			Todos []todo.Entity `json:"todos"`
		} `json:"data"`
	}

	require.NoError(t, json.Unmarshal(body, &listed))
	require.NotEmpty(t, listed.Data.Todos)

	seen := make(map[string]bool)

	for _, item := range listed.Data.Todos {
		assert.Equal(t, "Eggs", item.Title)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func Test_docs_schema(t *testing.T) {
	l := infra.NewServiceLocator(service.Config{})
	defer l.Close()

	srv := httptest.NewServer(nethttp.NewRouter(l))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/docs/openapi.json")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"Todo Graph Service"`)
	assert.Contains(t, string(body), `"/graph"`)
}
