package statespace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/search"
	"github.com/katalvlaran/pathsearch/statespace"
)

func TestLoadFile_TwoPaths(t *testing.T) {
	s, err := statespace.LoadFile(filepath.Join("testdata", "two_paths.yaml"))
	require.NoError(t, err)
	p, err := s.Problem()
	require.NoError(t, err)

	ucs, err := search.UniformCostSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"toM", "toG"}, ucs)

	astar, err := search.AStarSearch[string, string](p, s.Heuristic())
	require.NoError(t, err)
	assert.Equal(t, ucs, astar)

	dfs, err := search.DepthFirstSearch[string, string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, dfs)
	assert.Equal(t, 10.0, p.CostOfActions(dfs))
}

func TestLoadFile_UnreachableGoal(t *testing.T) {
	s, err := statespace.LoadFile(filepath.Join("testdata", "corridor.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Vault", "B", "C", "D"}, s.States())
	assert.Equal(t, 6, s.TransitionCount())

	p, err := s.Problem()
	require.NoError(t, err)
	res, err := search.Run[string, string](p, search.BFS, nil)
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.Outcome)
	assert.Empty(t, res.Actions)
	assert.Equal(t, 4, res.Expanded)

	// each corridor room has distinct labels for both directions
	assert.Equal(t, 4.0, p.CostOfActions([]string{"east", "east", "west", "east"}))
	states, ok := p.Replay([]string{"east", "east", "east", "west"})
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "D", "C"}, states)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := statespace.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Empty", "", statespace.ErrInvalidDocument},
		{"Malformed", "start: [", statespace.ErrInvalidDocument},
		{"UnknownField", "start: A\nweights: {}\n", statespace.ErrInvalidDocument},
		{"EmptyGoal", "start: A\ngoals: ['']\n", statespace.ErrEmptyStateID},
		{"EmptyAction", "start: A\ntransitions:\n  - {from: A, to: B, cost: 1}\n", statespace.ErrEmptyAction},
		{"NegativeCost", "start: A\ntransitions:\n  - {from: A, to: B, action: x, cost: -2}\n", statespace.ErrNegativeCost},
		{"NegativeHeuristic", "start: A\nheuristic: {A: -1}\n", statespace.ErrNegativeHeuristic},
		{"DuplicateAction", "start: A\ntransitions:\n  - {from: A, to: B, action: x, cost: 1}\n  - {from: A, to: C, action: x, cost: 1}\n", statespace.ErrDuplicateAction},
		{"UndirectedCollision", "start: A\nundirected: true\ntransitions:\n  - {from: A, to: B, action: step, cost: 1}\n  - {from: B, to: C, action: step, cost: 1}\n", statespace.ErrDuplicateAction},
		{"SelfLoopSameReverse", "start: A\ntransitions:\n  - {from: A, to: A, action: x, reverse: x, cost: 1}\n", statespace.ErrDuplicateAction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := statespace.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_HeuristicErrorsInKeyOrder(t *testing.T) {
	doc := "start: A\nheuristic: {D: -4, B: -2, C: -3, A: -1}\n"
	for i := 0; i < 10; i++ {
		_, err := statespace.Load(strings.NewReader(doc))
		require.ErrorIs(t, err, statespace.ErrNegativeHeuristic)
		assert.Contains(t, err.Error(), "A h=-1")
	}
}

func TestLoad_ReverseLabels(t *testing.T) {
	doc := `
start: A
goals: [A]
transitions:
  - {from: A, to: B, action: east, reverse: west, cost: 2}
`
	s, err := statespace.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []statespace.Transition{{From: "B", To: "A", Action: "west", Cost: 2}}, s.Transitions("B"))
}

func TestLoad_NoStartIsReportedByProblem(t *testing.T) {
	s, err := statespace.Load(strings.NewReader("goals: [G]\n"))
	require.NoError(t, err)
	_, err = s.Problem()
	assert.ErrorIs(t, err, statespace.ErrNoStart)
}
