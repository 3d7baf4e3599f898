package gateway

import "encoding/json"

// unwrapList normalizes the backend's drifting list envelopes into a slice of
// raw items. Known shapes, tried in order: a bare array, {"data": [...]},
// a resource-named key, {"result": [...]}. Anything else yields an empty
// list rather than an error.
//
// This is a compatibility shim for an unpinned backend contract; once the
// contract settles on one shape the extra paths should be deleted.
func unwrapList(raw []byte, resourceKeys ...string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil
	}

	keys := append([]string{"data"}, resourceKeys...)
	keys = append(keys, "result")
	for _, key := range keys {
		nested, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(nested, &items); err == nil {
			return items, nil
		}
	}
	return nil, nil
}

// decodeItems unmarshals each raw item through the mapper, skipping items
// that fail to decode instead of dropping the whole list.
func decodeItems[W any, M any](items []json.RawMessage, toModel func(W) M) []M {
	out := make([]M, 0, len(items))
	for _, item := range items {
		var wire W
		if err := json.Unmarshal(item, &wire); err != nil {
			continue
		}
		out = append(out, toModel(wire))
	}
	return out
}
