package postgres

// Package postgres implements the repository interfaces over database/sql
// with parameterized queries. List-valued document fields are stored as
// JSONB and (un)marshaled at this layer so models stay persistence-free.

import "encoding/json"

func marshalStrings(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	return json.Marshal(v)
}

func unmarshalStrings(b []byte) ([]string, error) {
	if len(b) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
