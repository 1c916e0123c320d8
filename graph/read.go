package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadDigraph builds a Digraph from the plain-text format
//
//	V E
//	v w weight   (E times)
//
// with whitespace-separated tokens (newlines and spaces are equivalent).
// Malformed tokens yield ErrBadFormat wrapped with context; negative counts
// and out-of-range endpoints yield the corresponding container errors.
// Complexity: O(V + E).
func ReadDigraph(r io.Reader) (*Digraph, error) {
	sc := newTokens(r)

	// 1) Header: vertex count, then edge count.
	v, err := sc.nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := sc.nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: edge count %d", ErrBadFormat, e)
	}
	g, err := NewDigraph(v)
	if err != nil {
		return nil, err
	}

	// 2) Body: e triples "from to weight".
	for i := 0; i < e; i++ {
		from, to, weight, err := sc.nextTriple(i)
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(from, to, weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// ReadGraph builds an undirected Graph from the same text format as
// ReadDigraph; each triple "v w weight" becomes one shared undirected edge.
// Complexity: O(V + E).
func ReadGraph(r io.Reader) (*Graph, error) {
	sc := newTokens(r)

	v, err := sc.nextInt("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := sc.nextInt("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: edge count %d", ErrBadFormat, e)
	}
	g, err := NewGraph(v)
	if err != nil {
		return nil, err
	}

	for i := 0; i < e; i++ {
		a, b, weight, err := sc.nextTriple(i)
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(a, b, weight); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// tokens wraps a word-splitting scanner with typed, context-carrying reads.
type tokens struct {
	sc *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the raw next token, or ErrBadFormat on EOF / read failure.
func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrBadFormat, what, err)
		}

		return "", fmt.Errorf("%w: missing %s", ErrBadFormat, what)
	}

	return t.sc.Text(), nil
}

// nextInt parses the next token as a base-10 integer.
func (t *tokens) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadFormat, what, tok)
	}

	return n, nil
}

// nextFloat parses the next token as a float64.
func (t *tokens) nextFloat(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadFormat, what, tok)
	}

	return f, nil
}

// nextTriple reads one "v w weight" edge line for edge index i.
func (t *tokens) nextTriple(i int) (int, int, float64, error) {
	a, err := t.nextInt(fmt.Sprintf("edge %d source", i))
	if err != nil {
		return 0, 0, 0, err
	}
	b, err := t.nextInt(fmt.Sprintf("edge %d target", i))
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := t.nextFloat(fmt.Sprintf("edge %d weight", i))
	if err != nil {
		return 0, 0, 0, err
	}

	return a, b, w, nil
}
