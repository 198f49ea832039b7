package searcher

import "isolation/game"

// treeNode is a hand-built game tree. value is the heuristic score from seat
// 0's perspective; terminal nodes are lost by the player to move.
type treeNode struct {
	id       int
	value    float64
	terminal bool
	children []*treeNode
}

func leaf(id int, value float64) *treeNode {
	return &treeNode{id: id, value: value}
}

func lost(id int) *treeNode {
	return &treeNode{id: id, terminal: true}
}

func branch(id int, children ...*treeNode) *treeNode {
	return &treeNode{id: id, children: children}
}

type treeState struct {
	node *treeNode
	ply  int
}

func (s treeState) Player() game.PlayerID {
	return game.PlayerID(s.ply % 2)
}

func (s treeState) PlyCount() int {
	return s.ply
}

func (s treeState) Location(player game.PlayerID) int {
	return game.NoLocation
}

func (s treeState) Actions() []game.Action {
	actions := make([]game.Action, len(s.node.children))
	for i := range s.node.children {
		actions[i] = game.Action(i)
	}
	return actions
}

func (s treeState) Result(action game.Action) game.State {
	return treeState{node: s.node.children[action], ply: s.ply + 1}
}

func (s treeState) Terminal() bool {
	return s.node.terminal
}

func (s treeState) Utility(player game.PlayerID) float64 {
	if !s.node.terminal {
		return 0
	}
	if player == s.Player() {
		return game.Loss
	}
	return game.Win
}

func (s treeState) Liberties(loc int) []int {
	return nil
}

// treeEvaluator scores tree leaves and records which ones it was asked about.
type treeEvaluator struct {
	visited []int
}

func (e *treeEvaluator) evaluate(state game.State, self game.PlayerID) float64 {
	node := state.(treeState).node
	e.visited = append(e.visited, node.id)
	if self == 1 {
		return -node.value
	}
	return node.value
}

// pruningTree is a 3-ply tree whose best root action is 0 with value 5. With
// a full window at each root child, alpha-beta skips leaves 4 and 8: the
// opponent already has a reply worth less to seat 0 than their first
// siblings.
func pruningTree() *treeNode {
	return branch(0,
		branch(10,
			branch(11, leaf(1, 3), leaf(2, 5)),
			branch(12, leaf(3, 6), leaf(4, 9)),
		),
		branch(20,
			branch(21, leaf(5, 1), leaf(6, 2)),
			branch(22, leaf(7, 4), leaf(8, 0)),
		),
	)
}
