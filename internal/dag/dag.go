// SPDX-License-Identifier: MPL-2.0

// Package dag orders command types so that every type comes after the types
// its dependency defaults reference, and reports reference cycles. The command
// catalog uses it to reject type sets whose calls would recurse forever.
package dag

import (
	"fmt"
	"strings"
)

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError[K ~string] struct {
		// Cycle lists one closed path through the cycle; the first node is
		// repeated at the end (e.g., a -> b -> a).
		Cycle []K
	}

	// Graph is a directed graph keyed by a string-like node identifier.
	// An edge from A to B means "A must come before B": B references A.
	Graph[K ~string] struct {
		// adjacency maps each node to its outgoing neighbors (nodes that reference it).
		adjacency map[K][]K
		// nodes tracks all nodes in insertion order for deterministic output.
		nodes   []K
		nodeSet map[K]bool
	}
)

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, k := range e.Cycle {
		parts[i] = string(k)
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(parts, " -> "))
}

// New creates an empty Graph.
func New[K ~string]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]K),
		nodeSet:   make(map[K]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph[K]) AddNode(name K) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds a directed edge from -> to, meaning "from" must come before "to".
// Both nodes are implicitly added. Duplicate edges are ignored.
func (g *Graph[K]) AddEdge(from, to K) {
	g.AddNode(from)
	g.AddNode(to)
	for _, existing := range g.adjacency[from] {
		if existing == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int { return len(g.nodes) }

// TopologicalSort returns a valid order using Kahn's algorithm.
// Returns *CycleError if the graph contains a cycle.
// Nodes at the same level appear in the order they were first added.
func (g *Graph[K]) TopologicalSort() ([]K, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[K]int, len(g.nodes))
	for _, node := range g.nodes {
		inDegree[node] = 0
	}
	for _, neighbors := range g.adjacency {
		for _, neighbor := range neighbors {
			inDegree[neighbor]++
		}
	}

	queue := make([]K, 0, len(g.nodes))
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	result := make([]K, 0, len(g.nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range g.adjacency[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
			}
		}
	}

	if len(result) != len(g.nodes) {
		return nil, &CycleError[K]{Cycle: g.findCycle(inDegree)}
	}

	return result, nil
}

// findCycle walks the nodes Kahn's algorithm could not release and returns
// one closed path. Every such node has a predecessor that is also unreleased,
// so following edges among them always closes a loop.
func (g *Graph[K]) findCycle(inDegree map[K]int) []K {
	const (
		unvisited = iota
		onStack
		done
	)
	state := make(map[K]int, len(g.nodes))
	var stack []K

	var visit func(K) []K
	visit = func(node K) []K {
		state[node] = onStack
		stack = append(stack, node)
		for _, next := range g.adjacency[node] {
			if inDegree[next] == 0 {
				continue
			}
			switch state[next] {
			case onStack:
				for i, k := range stack {
					if k == next {
						cycle := append([]K{}, stack[i:]...)
						return append(cycle, next)
					}
				}
			case unvisited:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[node] = done
		return nil
	}

	for _, node := range g.nodes {
		if inDegree[node] > 0 && state[node] == unvisited {
			if cycle := visit(node); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
