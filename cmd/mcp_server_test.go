package cmd

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"display": "tabbed", "columns": 2.0}
	if got := stringParam(params, "display", "normal"); got != "tabbed" {
		t.Errorf("got %q, want tabbed", got)
	}
	if got := stringParam(params, "missing", "normal"); got != "normal" {
		t.Errorf("got %q, want default normal", got)
	}
	if got := stringParam(params, "columns", "normal"); got != "normal" {
		t.Errorf("wrong type should fall back to default, got %q", got)
	}
}

func TestIntParam(t *testing.T) {
	// MCP arguments arrive as float64 after JSON decoding.
	params := map[string]interface{}{"columns": 3.0, "display": "normal"}
	if got := intParam(params, "columns", 0); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := intParam(params, "missing", 5); got != 5 {
		t.Errorf("got %d, want default 5", got)
	}
	if got := intParam(params, "display", 7); got != 7 {
		t.Errorf("wrong type should fall back to default, got %d", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"dry-run": true}
	if !boolParam(params, "dry-run", false) {
		t.Error("got false, want true")
	}
	if boolParam(params, "missing", false) {
		t.Error("got true, want default false")
	}
}

func TestServeUnsupportedTransport(t *testing.T) {
	srv := newMCPServer()
	if err := srv.serve(MCPConfig{Transport: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unsupported transport")
	}
}
