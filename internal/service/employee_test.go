package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoroniPereira/TIME-SHEET/internal/api"
	"github.com/MoroniPereira/TIME-SHEET/internal/model"
)

func TestEmployeeList_Delegates(t *testing.T) {
	t.Parallel()
	tr := &fakeTransport{respond: func(out any) {
		*out.(*[]model.Employee) = []model.Employee{{ID: 1, FullName: "Ana Souza"}}
	}}
	s := NewEmployeeService(tr, nil)

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if tr.method != "GET" || tr.path != "/employee" {
		t.Fatalf("request = %s %s", tr.method, tr.path)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got = %+v", got)
	}
}

func TestEmployeeCreate(t *testing.T) {
	t.Parallel()
	tr := &fakeTransport{respond: func(out any) {
		*out.(*model.Employee) = model.Employee{ID: 9, FullName: "Bruno Lima"}
	}}
	s := NewEmployeeService(tr, nil)

	in := model.CreateEmployee{
		FullName:   "Bruno Lima",
		Email:      "bruno@example.com",
		Department: "TI",
		Position:   "Dev",
	}
	got, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tr.method != "POST" || tr.path != "/employee" {
		t.Fatalf("request = %s %s", tr.method, tr.path)
	}
	if got.ID != 9 {
		t.Fatalf("got = %+v", got)
	}

	if _, err := s.Create(context.Background(), model.CreateEmployee{}); err == nil {
		t.Fatal("want validation error on empty input")
	}
}

func TestEmployeeUpdateAndDeactivatePaths(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := &fakeTransport{respond: func(out any) {
		if e, ok := out.(*model.Employee); ok {
			*e = model.Employee{ID: 5}
		}
	}}
	s := NewEmployeeService(tr, nil)

	_, err := s.Update(ctx, model.UpdateEmployee{ID: 5, FullName: "Ana Souza"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", tr.method)
	assert.Equal(t, "/employee/5", tr.path)

	_, err = s.Update(ctx, model.UpdateEmployee{})
	assert.Error(t, err, "missing id")

	require.NoError(t, s.Deactivate(ctx, 5))
	assert.Equal(t, "DELETE", tr.method)
	assert.Equal(t, "/employee/5", tr.path)

	assert.Error(t, s.Deactivate(ctx, 0))
}

func TestEmployeeToggleStatus(t *testing.T) {
	t.Parallel()
	tr := &fakeTransport{respond: func(out any) {
		*out.(*model.Employee) = model.Employee{ID: 5, Status: model.StatusInactive}
	}}
	s := NewEmployeeService(tr, nil)

	got, err := s.ToggleStatus(context.Background(), 5, false)
	require.NoError(t, err)
	assert.Equal(t, "PATCH", tr.method)
	assert.Equal(t, "/employees/5/status", tr.path)
	assert.Equal(t, map[string]bool{"active": false}, tr.body)
	assert.Equal(t, model.StatusInactive, got.Status)
}

func TestEmployeeFilteredListings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr := &fakeTransport{}
	s := NewEmployeeService(tr, nil)

	_, err := s.ListByDepartment(ctx, "Recursos Humanos")
	require.NoError(t, err)
	assert.Equal(t, "/employees?department=Recursos+Humanos", tr.path)

	_, err = s.ListByDepartment(ctx, "")
	assert.Error(t, err)

	_, err = s.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/employees?active=true", tr.path)

	_, err = s.ListInactive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/employees?active=false", tr.path)
}

// TestEmployeeAgainstHTTPServer runs the facade through the real transport
// to cover the full encode/decode path.
func TestEmployeeAgainstHTTPServer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/employee":
			_ = json.NewEncoder(w).Encode([]model.Employee{
				{ID: 1, FullName: "Ana Souza", Status: model.StatusActive},
				{ID: 2, FullName: "Bruno Lima", Status: model.StatusInactive},
			})
		case r.Method == http.MethodPut && r.URL.Path == "/employee/2":
			var in model.UpdateEmployee
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(model.Employee{ID: 2, FullName: in.FullName})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	s := NewEmployeeService(api.New(srv.URL, 0, nil, nil), nil)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana Souza", list[0].FullName)

	upd, err := s.Update(context.Background(), model.UpdateEmployee{ID: 2, FullName: "Bruno L. Lima"})
	require.NoError(t, err)
	assert.Equal(t, "Bruno L. Lima", upd.FullName)

	err = s.Deactivate(context.Background(), 404)
	assert.Error(t, err)
	var se *api.StatusError
	assert.True(t, errors.As(err, &se))
}
