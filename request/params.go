package request

import (
	"net/url"
	"strings"
)

// Params is an insertion-ordered set of request parameters. The signature covers the
// encoded form, so the order values are set in is the order they are sent in.
type Params struct {
	keys   []string
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: map[string]string{}}
}

// Set appends key, or replaces its value in place when it is already present.
func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = value
}

func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]

	return v, ok
}

func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

func (p *Params) Len() int {
	return len(p.keys)
}

func (p *Params) Clone() *Params {
	c := NewParams()

	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}

	return c
}

// Encode returns key=value pairs joined by '&' in insertion order, form escaped.
func (p *Params) Encode() string {
	var sb strings.Builder

	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.values[k]))
	}

	return sb.String()
}
