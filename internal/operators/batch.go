package operators

import (
	"net/url"
	"strconv"

	"proxy-lattice/utils"
)

const (
	DefaultBatchSize = 25
	MaxBatchSize     = 1000
)

// Batching holds the navigation links of a batched response. It is only
// present when the result spans more than one page.
type Batching struct {
	ID    string `json:"@id"`
	First string `json:"first"`
	Last  string `json:"last"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
}

// Response is the endpoint payload.
type Response struct {
	ID         string    `json:"@id"`
	Items      []Item    `json:"items"`
	ItemsTotal int       `json:"items_total"`
	Batching   *Batching `json:"batching,omitempty"`
}

// batch is the requested window over a result list.
type batch struct {
	start int
	size  int
}

// parseBatch reads b_start and b_size. Missing or malformed values take
// their defaults; b_start is floored at 0 and b_size clamped to
// [1, MaxBatchSize].
func parseBatch(q url.Values) batch {
	b := batch{start: 0, size: DefaultBatchSize}

	if v, err := strconv.Atoi(q.Get("b_start")); err == nil {
		b.start = max(v, 0)
	}

	if v, err := strconv.Atoi(q.Get("b_size")); err == nil {
		b.size = v
	}

	if !utils.IsInRange(1, b.size, MaxBatchSize) {
		b.size = utils.Clamp(1, b.size, MaxBatchSize)
	}

	return b
}

// build assembles the response for items. base is the canonical URL of the
// collection, without batching parameters.
func (b batch) build(base *url.URL, items []Item) Response {
	total := len(items)

	// A start past the end yields an empty page.
	b.start = min(b.start, total)

	lo := b.start
	hi := lo + min(b.size, total-lo)

	resp := Response{
		ID:         base.String(),
		Items:      items[lo:hi],
		ItemsTotal: total,
	}

	if total <= b.size {
		return resp
	}

	last := (total - 1) / b.size * b.size

	resp.Batching = &Batching{
		ID:    b.link(base, b.start),
		First: b.link(base, 0),
		Last:  b.link(base, last),
	}

	if b.size < total-b.start {
		resp.Batching.Next = b.link(base, b.start+b.size)
	}

	if b.start > 0 {
		resp.Batching.Prev = b.link(base, max(b.start-b.size, 0))
	}

	return resp
}

func (b batch) link(base *url.URL, start int) string {
	u := *base
	q := u.Query()
	q.Set("b_start", strconv.Itoa(start))
	q.Set("b_size", strconv.Itoa(b.size))
	u.RawQuery = q.Encode()

	return u.String()
}
