package intake

import "testing"

func TestGraphStaticEdgesResolve(t *testing.T) {
	for _, n := range Nodes() {
		if n.Next.To != "" {
			if LookupNode(n.Next.To) == nil {
				t.Errorf("node %q: static edge points at missing node %q", n.ID, n.Next.To)
			}
		}
		for opt, target := range n.Next.ByOption {
			if LookupNode(target) == nil {
				t.Errorf("node %q option %q: edge points at missing node %q", n.ID, opt, target)
			}
		}
	}
}

func TestGraphByOptionCoversAllOptions(t *testing.T) {
	for _, n := range Nodes() {
		if n.Next.ByOption == nil {
			continue
		}
		for _, opt := range n.Options {
			if _, ok := n.Next.ByOption[opt]; !ok {
				t.Errorf("node %q: option %q has no outgoing edge", n.ID, opt)
			}
		}
	}
}

func TestGraphChoiceNodesHaveOptions(t *testing.T) {
	for _, n := range Nodes() {
		switch n.Input {
		case InputChoice, InputMulti:
			if len(n.Options) == 0 {
				t.Errorf("node %q: %s input with no options", n.ID, n.Input)
			}
		case InputInteger, InputDecimal:
			if n.Bounds == nil {
				t.Errorf("node %q: numeric input with no bounds", n.ID)
			}
		}
	}
}

func TestGraphTerminalNode(t *testing.T) {
	end := LookupNode(NodeEnd)
	if end == nil {
		t.Fatal("graph has no end node")
	}
	if end.Next.To != "" || end.Next.ByOption != nil || end.Next.Route != nil {
		t.Error("end node must have no outgoing edges")
	}
	if end.Input != InputNone {
		t.Errorf("end node input = %q, want %q", end.Input, InputNone)
	}
}

func TestGraphEveryNodeHasExit(t *testing.T) {
	for _, n := range Nodes() {
		if n.ID == NodeEnd {
			continue
		}
		if n.Next.To == "" && n.Next.ByOption == nil && n.Next.Route == nil {
			t.Errorf("node %q has no outgoing edge", n.ID)
		}
	}
}

func TestGraphNodeIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, n := range Nodes() {
		if seen[n.ID] {
			t.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}
	if !seen[NodeStart] || !seen[NodeSummary] {
		t.Error("graph is missing start or summary node")
	}
}
