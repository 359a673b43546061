package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// WriteGraph persists the graph as bzip2-compressed text. header is
// "numVertices numEdges", then one vertex line "hasCoord lat lon name" per vertex
// (name last because city names contain spaces), then one "u v weight" line per
// undirected edge with u < v.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	fmt.Fprintf(w, "%d %d\n", g.NumberOfVertices(), g.NumberOfEdges())

	for u := 0; u < g.NumberOfVertices(); u++ {
		hasCoord := 0
		if g.hasCoord[u] {
			hasCoord = 1
		}
		latF := strconv.FormatFloat(g.coords[u].Lat, 'f', -1, 64)
		lonF := strconv.FormatFloat(g.coords[u].Lon, 'f', -1, 64)
		fmt.Fprintf(w, "%d %s %s %s\n", hasCoord, latF, lonF, g.names[u])
	}

	for u := 0; u < g.NumberOfVertices(); u++ {
		for _, e := range g.adj[u] {
			if Index(u) < e.head {
				weightF := strconv.FormatFloat(e.weight, 'f', -1, 64)
				fmt.Fprintf(w, "%d %d %s\n", u, e.head, weightF)
			}
		}
	}

	return nil
}

// ReadGraph loads a graph previously written by WriteGraph.
func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewReader(bz)
	readLine := func() (string, error) {
		line, err := r.ReadString('\n')
		// a final line without trailing newline is still a valid line
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid graph file header")
	}

	numVertices, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, err
	}
	numEdges, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, err
	}

	g := NewGraph()

	names := make([]string, numVertices)
	for u := 0; u < numVertices; u++ {
		line, err = readLine()
		if err != nil {
			return nil, err
		}
		parts = strings.SplitN(line, " ", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid vertex line: %q", line)
		}

		name := parts[3]
		names[u] = name
		g.AddVertex(name)

		if parts[0] == "1" {
			lat, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return nil, err
			}
			lon, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, err
			}
			g.SetCoordinate(name, lat, lon)
		}
	}

	for i := 0; i < numEdges; i++ {
		line, err = readLine()
		if err != nil {
			return nil, err
		}
		parts = strings.Fields(line)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid edge line: %q", line)
		}

		u, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, err
		}
		if u < 0 || u >= numVertices || v < 0 || v >= numVertices {
			return nil, fmt.Errorf("edge endpoint out of range: %q", line)
		}
		weight, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, err
		}

		if _, err := g.AddEdge(names[u], names[v], weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
