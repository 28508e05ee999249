// cmd/tsymd/main.go — standalone HTTP demo service for the tsym core.
//
// Exposes a handful of tsym operations over HTTP/JSON for scripting and
// agent frameworks to drive. This binary, like the core's print engine and
// value-type wrapper, is an external collaborator: it consumes immutable
// expression handles and the operations tsym exposes, and is not part of
// the core itself.
//
// Usage:
//   go run ./cmd/tsymd -port 8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/tliron/commonlog"

	"github.com/exprmath/tsym"
)

var log = commonlog.GetLogger("tsymd")

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	verbose := flag.Int("verbose", 1, "commonlog verbosity")
	flag.Parse()

	commonlog.Configure(*verbose, nil)

	mux := http.NewServeMux()

	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req ToolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		resp := HandleToolCall(req)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, ToolSpec())
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Infof("tsymd listening on %s", addr)
	log.Infof("  POST /tool   — execute a tool call")
	log.Infof("  GET  /schema — tool schema for agent registration")
	log.Infof("  GET  /health — health check")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("server exited: %s", err)
	}
}

// ToolRequest is the wire shape for a single tool invocation: Op names the
// operation, Exprs carries its expression-tree arguments (JSON-encoded, see
// decodeExpr), Var names the symbol for the diff operation.
type ToolRequest struct {
	Op    string            `json:"op"`
	Exprs []json.RawMessage `json:"exprs"`
	Var   string            `json:"var"`
}

// ToolResponse is the wire shape for a tool's result: either Result (the
// printed form of the resulting expression, or a Fraction's two halves) or
// Error (a human-readable description — never the internal error value).
type ToolResponse struct {
	Result string `json:"result,omitempty"`
	Denom  string `json:"denom,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HandleToolCall decodes req's expression arguments, dispatches to the
// matching tsym operation, and prints the result back out.
func HandleToolCall(req ToolRequest) ToolResponse {
	exprs := make([]*tsym.Expr, len(req.Exprs))
	for i, raw := range req.Exprs {
		e, err := decodeExpr(raw)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		exprs[i] = e
	}

	switch req.Op {
	case "simplify":
		if len(exprs) != 1 {
			return ToolResponse{Error: "simplify takes exactly one expression"}
		}
		return ToolResponse{Result: printExpr(exprs[0])}

	case "expand":
		if len(exprs) != 1 {
			return ToolResponse{Error: "expand takes exactly one expression"}
		}
		return ToolResponse{Result: printExpr(tsym.Expand(exprs[0]))}

	case "diff":
		if len(exprs) != 1 || req.Var == "" {
			return ToolResponse{Error: "diff takes one expression and a var"}
		}
		d := tsym.Diff(exprs[0], tsym.Symbol(req.Var, false))
		return ToolResponse{Result: printExpr(d)}

	case "gcd":
		if len(exprs) != 2 {
			return ToolResponse{Error: "gcd takes exactly two expressions"}
		}
		g := tsym.GCD(exprs[0], exprs[1], tsym.AlgoSubresultant)
		return ToolResponse{Result: printExpr(g)}

	case "normal":
		if len(exprs) != 1 {
			return ToolResponse{Error: "normal takes exactly one expression"}
		}
		frac := tsym.Normal(exprs[0])
		return ToolResponse{Result: printExpr(frac.Num), Denom: printExpr(frac.Denom)}

	default:
		return ToolResponse{Error: "unknown op: " + req.Op}
	}
}

// ToolSpec renders a minimal agent-framework tool schema describing the
// operations HandleToolCall accepts.
func ToolSpec() string {
	b, _ := json.MarshalIndent(map[string]interface{}{
		"name":        "tsymd",
		"description": "Symbolic math operations backed by the tsym core",
		"ops":         []string{"simplify", "expand", "diff", "gcd", "normal"},
	}, "", "  ")
	return string(b)
}
