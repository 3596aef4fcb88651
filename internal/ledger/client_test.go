package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// rpcHandler answers one JSON-RPC method call; the test node dispatches on
// the method name.
type rpcHandler func(params []any) (any, *RPCError)

func newTestNode(t *testing.T, handlers map[string]rpcHandler) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RPCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding rpc request: %v", err)
			return
		}

		resp := RPCResponse{JSONRPC: "2.0", ID: req.ID}
		handler, ok := handlers[req.Method]
		if !ok {
			resp.Error = &RPCError{Code: -32601, Message: "Method not found"}
		} else if result, rpcErr := handler(req.Params); rpcErr != nil {
			resp.Error = rpcErr
		} else {
			raw, err := json.Marshal(result)
			if err != nil {
				t.Errorf("marshaling rpc result: %v", err)
				return
			}
			resp.Result = raw
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestClient_GetBlockCount(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"getblockcount": func(params []any) (any, *RPCError) {
			return 4242, nil
		},
	})
	defer node.Close()

	client := NewClient(node.URL)
	count, err := client.GetBlockCount(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint32(4242), count)
}

func TestClient_RPCErrorPropagates(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"getblockcount": func(params []any) (any, *RPCError) {
			return nil, &RPCError{Code: -100, Message: "node syncing"}
		},
	})
	defer node.Close()

	client := NewClient(node.URL)
	_, err := client.GetBlockCount(context.Background())
	assert.ErrorContains(t, err, "node syncing")
}

func TestLedger_PayTax(t *testing.T) {
	// The application log only becomes available after the transaction is
	// confirmed; the first poll misses.
	var logPolls atomic.Int32
	node := newTestNode(t, map[string]rpcHandler{
		"invokefunction": func(params []any) (any, *RPCError) {
			assert.Equal(t, "0xc0ffee", params[0])
			assert.Equal(t, "payTax", params[1])
			return InvokeResult{Tx: "0xabc123", State: "HALT", GasConsumed: "1000"}, nil
		},
		"getapplicationlog": func(params []any) (any, *RPCError) {
			if logPolls.Add(1) == 1 {
				return nil, &RPCError{Code: -100, Message: "Unknown transaction"}
			}
			assert.Equal(t, "0xabc123", params[0])
			return ApplicationLog{
				TxID:       "0xabc123",
				Executions: []Execution{{Trigger: "Application", VMState: "HALT"}},
			}, nil
		},
	})
	defer node.Close()

	l := New(node.URL, "0xc0ffee", 10*time.Millisecond, 2*time.Second)
	txHash, err := l.PayTax(context.Background(), "Ali", "12345-1234567-50", "veh001", 2000)
	assert.NoError(t, err)
	assert.Equal(t, "0xabc123", txHash)
	assert.GreaterOrEqual(t, logPolls.Load(), int32(2))
}

func TestLedger_TrialExecutionFault(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"invokefunction": func(params []any) (any, *RPCError) {
			return InvokeResult{Tx: "0xabc123", State: "FAULT", Exception: "tax already paid"}, nil
		},
	})
	defer node.Close()

	l := New(node.URL, "0xc0ffee", 10*time.Millisecond, 2*time.Second)
	_, err := l.PayTax(context.Background(), "Ali", "12345-1234567-50", "veh001", 2000)
	assert.ErrorContains(t, err, "tax already paid")
}

func TestLedger_ConfirmedExecutionFault(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"invokefunction": func(params []any) (any, *RPCError) {
			return InvokeResult{Tx: "0xabc123", State: "HALT"}, nil
		},
		"getapplicationlog": func(params []any) (any, *RPCError) {
			return ApplicationLog{
				TxID:       "0xabc123",
				Executions: []Execution{{Trigger: "Application", VMState: "FAULT", Exception: "storage limit"}},
			}, nil
		},
	})
	defer node.Close()

	l := New(node.URL, "0xc0ffee", 10*time.Millisecond, 2*time.Second)
	_, err := l.RegisterVehicle(context.Background(), "12345-1234567-50", "veh099")
	assert.ErrorContains(t, err, "storage limit")
}

func TestLedger_ConfirmationTimeout(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"invokefunction": func(params []any) (any, *RPCError) {
			return InvokeResult{Tx: "0xabc123", State: "HALT"}, nil
		},
		"getapplicationlog": func(params []any) (any, *RPCError) {
			// Never confirms.
			return nil, &RPCError{Code: -100, Message: "Unknown transaction"}
		},
	})
	defer node.Close()

	l := New(node.URL, "0xc0ffee", 10*time.Millisecond, 100*time.Millisecond)
	_, err := l.ApplyNumberPlate(context.Background(), "veh010")
	assert.ErrorContains(t, err, "deadline exceeded")
}

func TestLedger_Ping(t *testing.T) {
	t.Run("Reachable", func(t *testing.T) {
		node := newTestNode(t, map[string]rpcHandler{
			"getblockcount": func(params []any) (any, *RPCError) {
				return 1, nil
			},
		})
		defer node.Close()

		l := New(node.URL, "0xc0ffee", 0, 0)
		assert.NoError(t, l.Ping(context.Background()))
	})

	t.Run("Unreachable", func(t *testing.T) {
		l := New("http://127.0.0.1:1", "0xc0ffee", 0, 0)
		assert.Error(t, l.Ping(context.Background()))
	})
}

func TestWaitForApplicationLog_ContextCancel(t *testing.T) {
	node := newTestNode(t, map[string]rpcHandler{
		"getapplicationlog": func(params []any) (any, *RPCError) {
			return nil, &RPCError{Code: -100, Message: "Unknown transaction"}
		},
	})
	defer node.Close()

	client := NewClient(node.URL)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.WaitForApplicationLog(ctx, "0xabc123", 10*time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
}
