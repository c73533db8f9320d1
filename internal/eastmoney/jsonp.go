package eastmoney

import "bytes"

// unwrapJSONP strips a JSONP callback wrapper — "cb({...});" — down to
// the JSON payload. Some upstream variants answer JSONP even without a
// callback parameter. Plain JSON passes through untouched.
func unwrapJSONP(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] == '{' || trimmed[0] == '[' {
		return trimmed
	}
	open := bytes.IndexByte(trimmed, '(')
	closed := bytes.LastIndexByte(trimmed, ')')
	if open < 0 || closed <= open {
		return trimmed
	}
	return bytes.TrimSpace(trimmed[open+1 : closed])
}
