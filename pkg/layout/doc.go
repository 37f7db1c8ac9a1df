// Package layout defines the serialized form of a laid out segmented axis.
//
// A [Layout] is what the pipeline caches, what the HTTP API returns from
// /v1/layout, and what the render sinks draw from. It is a snapshot: it
// carries the effective segments (including a synthetic trailing segment
// when the data extent runs past the configured ones), their pixel
// geometry, and the major and minor tick coordinates at the time
// [FromAxis] was called.
//
//	{
//	  "dim": "x",
//	  "position": "bottom",
//	  "axis_length": 100,
//	  "segments": [{"index": 0, "from": 0, "to": 10, "left": 0, "size": 50, ...}],
//	  "ticks": [{"value": 0, "coord": 0, "global": 40}, ...]
//	}
//
// Use [Marshal]/[Unmarshal] or [WriteFile]/[ReadFile] to move layouts
// across process boundaries.
package layout
