package game

import (
	"sort"

	"manhunt/utils"
)

// Graph is the transport network the game is played on. Implementations must
// be safe to read from several states at once and must not change after a
// Setup has been built from them.
type Graph interface {
	// Nodes returns every location of the map.
	Nodes() []int
	// AdjacentNodes returns the locations directly connected to node.
	AdjacentNodes(node int) []int
	// EdgeValue returns the transports connecting a to b, empty if there is no edge.
	EdgeValue(a, b int) []Transport
}

// Station is a location of the map.
type Station struct {
	ID          int   // Unique identifier for the station
	AdjacentIDs []int // IDs of connected stations, ascending
}

type edge struct {
	from, to int
}

// Map is the in-memory Graph, built once and then only read.
type Map struct {
	Stations map[int]*Station // Maps station IDs to Station pointers
	routes   map[edge][]Transport
}

// NewMap creates and returns a new Map instance.
func NewMap() *Map {
	return &Map{
		Stations: make(map[int]*Station),
		routes:   make(map[edge][]Transport),
	}
}

// AddStation adds a station without any routes. Adding an existing station is a no-op.
func (m *Map) AddStation(id int) {
	if _, ok := m.Stations[id]; ok {
		return
	}
	m.Stations[id] = &Station{ID: id, AdjacentIDs: []int{}}
}

// AddRoute adds a bidirectional route between two stations, creating them if needed.
// Several transports may connect the same pair of stations.
func (m *Map) AddRoute(id1, id2 int, transport Transport) {
	m.AddStation(id1)
	m.AddStation(id2)
	m.link(id1, id2, transport)
	m.link(id2, id1, transport)
}

func (m *Map) link(from, to int, transport Transport) {
	s := m.Stations[from]
	if !utils.Contains(s.AdjacentIDs, to) {
		s.AdjacentIDs = append(s.AdjacentIDs, to)
		sort.Ints(s.AdjacentIDs)
	}
	e := edge{from: from, to: to}
	if !utils.Contains(m.routes[e], transport) {
		m.routes[e] = append(m.routes[e], transport)
		sort.Slice(m.routes[e], func(i, j int) bool { return m.routes[e][i] < m.routes[e][j] })
	}
}

func (m *Map) Nodes() []int {
	nodes := make([]int, 0, len(m.Stations))
	for id := range m.Stations {
		nodes = append(nodes, id)
	}
	sort.Ints(nodes)
	return nodes
}

func (m *Map) AdjacentNodes(node int) []int {
	s, ok := m.Stations[node]
	if !ok {
		return nil
	}
	adjacent := make([]int, len(s.AdjacentIDs))
	copy(adjacent, s.AdjacentIDs)
	return adjacent
}

func (m *Map) EdgeValue(a, b int) []Transport {
	transports := m.routes[edge{from: a, to: b}]
	c := make([]Transport, len(transports))
	copy(c, transports)
	return c
}
