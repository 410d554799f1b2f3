package traverse

// Edge is one entry of a RelationMap's adjacency list: a directed edge to
// To, carrying the index of the relationship that produced it.
type Edge struct {
	To    string
	Index int
}

// RelationMap is a directed multigraph keyed source -> ordered list of
// (destination, relationship index) edges. It exists because Go map
// iteration order is randomized and the cycle-detection tie-break (6.01.03,
// and the cycle-discovery-completeness property) depends on exploring a
// node's outgoing edges in a fixed, reproducible order — the order the
// relationships occurred in the document. A third-party ordered-map was
// considered and rejected; see DESIGN.md.
type RelationMap struct {
	sources []string
	edges   map[string][]Edge
}

// NewRelationMap returns an empty RelationMap.
func NewRelationMap() *RelationMap {
	return &RelationMap{edges: make(map[string][]Edge)}
}

// Add appends a directed edge from -> to, carrying relationship index idx,
// preserving insertion order both across sources and within one source's
// edge list.
func (m *RelationMap) Add(from, to string, idx int) {
	if _, ok := m.edges[from]; !ok {
		m.sources = append(m.sources, from)
	}
	m.edges[from] = append(m.edges[from], Edge{To: to, Index: idx})
}

// Sources returns the map's source keys in insertion order.
func (m *RelationMap) Sources() []string { return m.sources }

// Edges returns from's outgoing edges in insertion order.
func (m *RelationMap) Edges(from string) []Edge { return m.edges[from] }

// Cycle is the result of a successful FindCycle call.
type Cycle struct {
	// Entry is the node at which the cycle was detected: the first node
	// revisited while it was still on the current traversal path.
	Entry string
	// Path is the cycle itself, from Entry back to Entry, inclusive of both
	// endpoints (so len(Path) is the cycle length plus one).
	Path []string
	// RelationshipIndex is the index of the first relationship edge within
	// the cycle, i.e. the edge leaving Entry along Path.
	RelationshipIndex int
}

// FindCycle runs a depth-first search from start over m, returning the
// first cycle found. visited records nodes already proven acyclic by a
// prior call so that scanning every key of m for a reachable cycle does not
// redo work; callers share one visited set across repeated calls over all
// of m's sources.
//
// Tie-break on multiple cycles sharing a start node: the first one
// encountered in m's edge-insertion order, which is what a plain
// depth-first search exploring Edges(node) in order already produces.
func FindCycle(m *RelationMap, start string, visited map[string]bool) (Cycle, bool) {
	onPath := make(map[string]int)
	var path []string
	var edgeIndex []int // edgeIndex[i] = index of the edge used to reach path[i]; edgeIndex[0] is unused.

	var dfs func(node string, viaIndex int) (Cycle, bool)
	dfs = func(node string, viaIndex int) (Cycle, bool) {
		onPath[node] = len(path)
		path = append(path, node)
		edgeIndex = append(edgeIndex, viaIndex)
		defer func() {
			delete(onPath, node)
			path = path[:len(path)-1]
			edgeIndex = edgeIndex[:len(edgeIndex)-1]
		}()

		for _, e := range m.Edges(node) {
			if pos, onCurrentPath := onPath[e.To]; onCurrentPath {
				cyclePath := append([]string{}, path[pos:]...)
				cyclePath = append(cyclePath, e.To)
				relIdx := e.Index
				if pos+1 < len(path) {
					relIdx = edgeIndex[pos+1]
				}
				return Cycle{Entry: e.To, Path: cyclePath, RelationshipIndex: relIdx}, true
			}
			if visited[e.To] {
				continue
			}
			if c, ok := dfs(e.To, e.Index); ok {
				return c, true
			}
		}
		visited[node] = true
		return Cycle{}, false
	}

	return dfs(start, -1)
}
