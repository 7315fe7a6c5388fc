package ast

import (
	"encoding/json"
	"fmt"
)

// jsonExpr mirrors Expr but with a JSON-friendly argument representation:
// each argument is either a bare JSON number or an object {"call": {...}}
// wrapping a nested expression.
type jsonExpr struct {
	Op       string          `json:"op"`
	Receiver *jsonExpr       `json:"receiver,omitempty"`
	Args     []json.RawMessage `json:"args,omitempty"`
}

type jsonCallArg struct {
	Call *jsonExpr `json:"call"`
}

// DecodeJSON parses the JSON encoding produced by EncodeJSON (and consumed
// by cmd/hydrac) into an Expr tree. This is the module's own convenience
// serialization for the opaque AST the surface parser would otherwise
// construct in-process; it is not part of the compiler's core contract.
func DecodeJSON(data []byte) (*Expr, error) {
	var je jsonExpr
	if err := json.Unmarshal(data, &je); err != nil {
		return nil, fmt.Errorf("ast: decode json: %w", err)
	}
	return decodeExpr(&je)
}

func decodeExpr(je *jsonExpr) (*Expr, error) {
	if je == nil {
		return nil, nil
	}
	e := &Expr{Op: je.Op}

	if je.Receiver != nil {
		recv, err := decodeExpr(je.Receiver)
		if err != nil {
			return nil, err
		}
		e.Receiver = recv
	}

	for i, raw := range je.Args {
		var num float64
		if err := json.Unmarshal(raw, &num); err == nil {
			e.Args = append(e.Args, Number(num))
			continue
		}
		var call jsonCallArg
		if err := json.Unmarshal(raw, &call); err == nil && call.Call != nil {
			sub, err := decodeExpr(call.Call)
			if err != nil {
				return nil, fmt.Errorf("ast: arg %d: %w", i, err)
			}
			e.Args = append(e.Args, Call{Expr: sub})
			continue
		}
		// Non-numeric, non-call argument expressions are silently skipped
		// (§3 of the specification: non-literal arguments are discarded).
	}

	return e, nil
}

// EncodeJSON serializes an Expr tree back to the JSON form DecodeJSON
// accepts. Useful for tests and for round-tripping a chain built with the
// ast package constructors through the CLI.
func EncodeJSON(e *Expr) ([]byte, error) {
	je, err := encodeExpr(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(je)
}

func encodeExpr(e *Expr) (*jsonExpr, error) {
	if e == nil {
		return nil, nil
	}
	je := &jsonExpr{Op: e.Op}

	if e.Receiver != nil {
		recv, err := encodeExpr(e.Receiver)
		if err != nil {
			return nil, err
		}
		je.Receiver = recv
	}

	for _, a := range e.Args {
		switch v := a.(type) {
		case Number:
			raw, err := json.Marshal(float64(v))
			if err != nil {
				return nil, err
			}
			je.Args = append(je.Args, raw)
		case Call:
			sub, err := encodeExpr(v.Expr)
			if err != nil {
				return nil, err
			}
			raw, err := json.Marshal(jsonCallArg{Call: sub})
			if err != nil {
				return nil, err
			}
			je.Args = append(je.Args, raw)
		default:
			return nil, fmt.Errorf("ast: unknown arg kind %T", a)
		}
	}

	return je, nil
}
