package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocCoversAPISurface(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("read swagger doc: %v", err)
	}

	var spec struct {
		BasePath string                            `json:"basePath"`
		Paths    map[string]map[string]interface{} `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	if spec.BasePath != "/api/v1" {
		t.Fatalf("expected base path /api/v1, got %q", spec.BasePath)
	}

	operations := []struct {
		path   string
		method string
	}{
		{"/auth/register", "post"},
		{"/auth/login", "post"},
		{"/auth/logout", "post"},
		{"/auth/check", "get"},
		{"/challenges", "get"},
		{"/challenges/categories", "get"},
		{"/challenges/difficulties", "get"},
		{"/challenges/{id}", "get"},
		{"/challenges/{id}/file", "get"},
		{"/challenges/{id}/submit", "post"},
		{"/teams", "get"},
		{"/teams", "post"},
		{"/teams/{id}", "get"},
		{"/teams/{id}/join", "post"},
		{"/users/leaderboard", "get"},
		{"/users/leaderboard/teams", "get"},
		{"/users/me", "get"},
		{"/users/me", "put"},
		{"/users/me/stats", "get"},
		{"/admin/users", "get"},
		{"/admin/users/{id}", "put"},
		{"/admin/challenges", "get"},
		{"/admin/challenges", "post"},
		{"/admin/challenges/{id}", "put"},
		{"/admin/challenges/{id}", "delete"},
		{"/admin/stats", "get"},
		{"/admin/export", "get"},
		{"/ping", "get"},
	}
	for _, op := range operations {
		path, ok := spec.Paths[op.path]
		if !ok {
			t.Errorf("missing path %s", op.path)
			continue
		}
		if _, ok := path[op.method]; !ok {
			t.Errorf("missing operation %s %s", op.method, op.path)
		}
	}
}
