package ledger

import "encoding/json"

// RPCRequest is a JSON-RPC request.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

// RPCResponse is a JSON-RPC response.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC error.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContractParam is a typed argument for a contract invocation.
type ContractParam struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func stringParam(v string) ContractParam {
	return ContractParam{Type: "String", Value: v}
}

func integerParam(v int64) ContractParam {
	return ContractParam{Type: "Integer", Value: v}
}

// InvokeResult is the result of invokefunction: the broadcast transaction
// hash plus the VM state of the trial execution.
type InvokeResult struct {
	Tx          string `json:"tx"`
	State       string `json:"state"`
	GasConsumed string `json:"gasconsumed"`
	Exception   string `json:"exception,omitempty"`
}

// ApplicationLog is the execution record of a confirmed transaction.
type ApplicationLog struct {
	TxID       string      `json:"txid"`
	Executions []Execution `json:"executions"`
}

// Execution is a single execution in the application log.
type Execution struct {
	Trigger     string `json:"trigger"`
	VMState     string `json:"vmstate"`
	GasConsumed string `json:"gasconsumed"`
	Exception   string `json:"exception,omitempty"`
}
