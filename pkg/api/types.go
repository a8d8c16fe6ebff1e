package api

import (
	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/sink"
)

// Response is the JSON envelope of every API response except raw artifacts.
type Response struct {
	Status string     `json:"status"` // "success" or "error"
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request. Field and Panels point at the input
// that caused it, so a form can highlight it.
type ErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Panels  []string `json:"panels,omitempty"`
}

// LayoutResponse is the data of a successful layout request without a
// format.
type LayoutResponse struct {
	sink.Output
	Joins []JoinResponse `json:"joins"`
}

// JoinResponse is one pair of mating panel sides.
type JoinResponse struct {
	A     string `json:"a"`
	ASide string `json:"a_side"`
	B     string `json:"b"`
	BSide string `json:"b_side"`
	Style string `json:"style"`
}

func newLayoutResponse(l *box.Layout) LayoutResponse {
	joins := l.Joins()
	resp := LayoutResponse{
		Output: sink.NewOutput(l, true),
		Joins:  make([]JoinResponse, len(joins)),
	}
	for i, j := range joins {
		resp.Joins[i] = JoinResponse{
			A:     j.A,
			ASide: box.SideNames[j.ASide],
			B:     j.B,
			BSide: box.SideNames[j.BSide],
			Style: j.Style,
		}
	}
	return resp
}
