package expansion

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/scenedash/scenedash/internal/navtree"
)

func scenarioTree(t *testing.T) *navtree.Tree {
	t.Helper()
	tree, err := navtree.Build([]navtree.Spec{
		{ID: 1, Name: "Dashboard", Path: "/"},
		{ID: 2, Name: "ThreeJs", Children: []navtree.Spec{
			{ID: 21, Name: "Geometries", Children: []navtree.Spec{
				{ID: 211, Name: "ActiveGeometries", Path: "/x"},
				{ID: 212, Name: "ActiveCamera", Path: "/y"},
			}},
			{ID: 22, Name: "Materials", Children: []navtree.Spec{
				{ID: 221, Name: "AllMaterials", Path: "/m"},
				{ID: 222, Name: "Deep", Children: []navtree.Spec{
					{ID: 2221, Name: "Deeper", Path: "/d"},
				}},
			}},
			{ID: 23, Name: "Plain", Path: "/plain"},
		}},
		{ID: 3, Name: "Object3D", Path: "/object", Children: []navtree.Spec{
			{ID: 31, Name: "All", Path: "/object/all"},
		}},
		{ID: 4, Name: "Disabled"},
	}, navtree.Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tree
}

func click(tree *navtree.Tree, s State, ids ...navtree.ID) State {
	for _, id := range ids {
		s = Toggle(tree, s, id)
	}
	return s
}

func TestScenarioA(t *testing.T) {
	tree := scenarioTree(t)

	s := click(tree, New(), 2, 21)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{2, 21}) {
		t.Fatalf("after ThreeJs, Geometries: %v, want [2 21]", got)
	}

	s = Toggle(tree, s, 22)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{2, 22}) {
		t.Fatalf("after Materials: %v, want [2 22]", got)
	}
}

func TestCollapseRemovesDescendants(t *testing.T) {
	tree := scenarioTree(t)

	s := click(tree, New(), 2, 22, 222)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{2, 22, 222}) {
		t.Fatalf("setup: %v", got)
	}

	s = Toggle(tree, s, 2)
	if s.Len() != 0 {
		t.Errorf("collapsing root should clear subtree, got %v", s.Expanded())
	}
}

func TestOpeningRootClosesOtherRootSubtrees(t *testing.T) {
	tree := scenarioTree(t)

	s := click(tree, New(), 2, 21, 3)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{3}) {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestLeafInertAndUnknownAreNoops(t *testing.T) {
	tree := scenarioTree(t)
	base := click(tree, New(), 2, 21)

	for _, id := range []navtree.ID{1, 211, 23, 4, 999} {
		got := Toggle(tree, base, id)
		if !got.Equal(base) {
			t.Errorf("Toggle(%d) changed state: %v -> %v", id, base.Expanded(), got.Expanded())
		}
	}
}

func TestGroupWithPathToggles(t *testing.T) {
	tree := scenarioTree(t)

	s := Toggle(tree, New(), 3)
	if !s.IsExpanded(3) {
		t.Fatal("degenerate group should expand")
	}
	s = Toggle(tree, s, 3)
	if s.IsExpanded(3) {
		t.Fatal("degenerate group should collapse")
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	tree := scenarioTree(t)

	before := click(tree, New(), 2, 21)
	snapshot := before.Clone()
	_ = Toggle(tree, before, 22)
	_ = Toggle(tree, before, 2)

	if !before.Equal(snapshot) {
		t.Errorf("input mutated: %v, want %v", before.Expanded(), snapshot.Expanded())
	}
}

func TestExpandThenCollapseRestoresState(t *testing.T) {
	tree := scenarioTree(t)

	// Starting states in which the toggled node has no open sibling group.
	tests := []struct {
		name  string
		start State
		id    navtree.ID
	}{
		{"empty root", New(), 2},
		{"nested under open parent", click(tree, New(), 2), 21},
		{"deep", click(tree, New(), 2, 22), 222},
		{"degenerate", New(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Toggle(tree, Toggle(tree, tt.start, tt.id), tt.id)
			if !got.Equal(tt.start) {
				t.Errorf("got %v, want %v", got.Expanded(), tt.start.Expanded())
			}
		})
	}
}

func TestExpandTo(t *testing.T) {
	tree := scenarioTree(t)

	s := ExpandTo(tree, click(tree, New(), 2, 21), 2221)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{2, 22, 222}) {
		t.Errorf("ExpandTo(2221) = %v, want [2 22 222]", got)
	}

	s = ExpandTo(tree, New(), 21)
	if got := s.Expanded(); !reflect.DeepEqual(got, []navtree.ID{2, 21}) {
		t.Errorf("ExpandTo(21) = %v, want [2 21]", got)
	}

	if got := ExpandTo(tree, s, 999); !got.Equal(s) {
		t.Error("ExpandTo unknown id should be a no-op")
	}
}

// visible returns the ids a user can click: roots plus the children of
// every open group.
func visible(tree *navtree.Tree, s State) []navtree.ID {
	var ids []navtree.ID
	tree.Walk(func(n *navtree.Node) bool {
		ids = append(ids, n.ID)
		return s.IsExpanded(n.ID)
	})
	return ids
}

// Random click sequences never violate the structural invariants.
func TestInvariantsHoldForRandomClicks(t *testing.T) {
	tree := scenarioTree(t)

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		s := New()
		for step := 0; step < 30; step++ {
			ids := append(visible(tree, s), 999)
			id := ids[rng.Intn(len(ids))]
			prev := s
			s = Toggle(tree, s, id)

			if prev.IsExpanded(id) && !s.IsExpanded(id) {
				for _, d := range tree.Descendants(id) {
					if s.IsExpanded(d) {
						t.Fatalf("descendant %d of collapsed %d still expanded", d, id)
					}
				}
			}
			checkInvariants(t, tree, s)
		}
	}
}

func checkInvariants(t *testing.T, tree *navtree.Tree, s State) {
	t.Helper()

	for _, id := range s.Expanded() {
		n := tree.Node(id)
		if n == nil || !n.IsGroup() {
			t.Fatalf("non-group %d marked expanded", id)
		}
		for _, a := range tree.Ancestors(id) {
			if !s.IsExpanded(a) {
				t.Fatalf("%d expanded under collapsed ancestor %d", id, a)
			}
		}
	}

	groups := [][]navtree.ID{tree.Roots()}
	tree.Walk(func(n *navtree.Node) bool {
		if len(n.Children) > 0 {
			groups = append(groups, n.Children)
		}
		return true
	})
	for _, g := range groups {
		open := 0
		for _, id := range g {
			if s.IsExpanded(id) {
				open++
			}
		}
		if open > 1 {
			t.Fatalf("%d open siblings in %v (state %v)", open, g, s.Expanded())
		}
	}
}

func TestZeroValueState(t *testing.T) {
	tree := scenarioTree(t)

	var s State
	if s.IsExpanded(2) || s.Len() != 0 {
		t.Fatal("zero state should be empty")
	}
	s = Toggle(tree, s, 2)
	if !s.IsExpanded(2) {
		t.Error("toggle on zero state should expand")
	}
	if !FromIDs(2, 21).Equal(click(tree, New(), 2, 21)) {
		t.Error("FromIDs should match clicked state")
	}
}
