package aec

import "testing"

func TestNewCoreStartsNeutral(t *testing.T) {
	c := NewCore(3)
	if len(c.PossibleAgents) != 3 || len(c.Agents) != 3 {
		t.Fatalf("rosters = %v / %v, want three agents each", c.PossibleAgents, c.Agents)
	}
	if c.Selection != None {
		t.Errorf("Selection = %d, want None", c.Selection)
	}
	for _, agent := range c.Agents {
		if c.Terminations[agent] || c.Truncations[agent] {
			t.Errorf("agent %d should start unfinished", agent)
		}
		if c.Rewards[agent] != 0 || c.Cumulative[agent] != 0 {
			t.Errorf("agent %d should start with zero rewards", agent)
		}
	}
}

func TestAccumulateRewards(t *testing.T) {
	c := NewCore(2)
	c.Rewards[0] = 5
	c.Rewards[1] = -5
	c.AccumulateRewards()
	c.ClearRewards()
	c.Rewards[0] = 1
	c.AccumulateRewards()

	if c.Cumulative[0] != 6 || c.Cumulative[1] != -5 {
		t.Errorf("cumulative = %v, want map[0:6 1:-5]", c.Cumulative)
	}
	if c.Rewards[1] != 0 {
		t.Errorf("ClearRewards left %d", c.Rewards[1])
	}
}

func TestResetRestoresRoster(t *testing.T) {
	c := NewCore(2)
	c.TerminateAll()
	c.Selection = 1
	c.Cumulative[0] = 10

	c.Reset()
	if len(c.Agents) != 2 {
		t.Errorf("roster not restored: %v", c.Agents)
	}
	if c.Done(0) || c.Done(1) {
		t.Error("terminations survived reset")
	}
	if c.Cumulative[0] != 0 {
		t.Error("cumulative rewards survived reset")
	}
	if c.Selection != None {
		t.Error("selection survived reset")
	}
}

func TestDeadStepRemovesAgentAndAdvances(t *testing.T) {
	c := NewCore(3)
	c.TerminateAll()
	c.Selection = 1

	c.DeadStep()
	if len(c.Agents) != 2 {
		t.Fatalf("agent not removed: %v", c.Agents)
	}
	if c.Selection != 2 {
		t.Errorf("Selection = %d, want 2", c.Selection)
	}

	c.DeadStep()
	if c.Selection != 0 {
		t.Errorf("Selection = %d, want wrap to 0", c.Selection)
	}

	c.DeadStep()
	if c.Selection != None {
		t.Errorf("Selection = %d, want None once the roster empties", c.Selection)
	}
	if len(c.Agents) != 0 {
		t.Errorf("roster should be empty, got %v", c.Agents)
	}
}

func TestRostered(t *testing.T) {
	c := NewCore(2)
	if !c.Rostered(0) || !c.Rostered(1) {
		t.Error("seats 0 and 1 should be rostered")
	}
	if c.Rostered(-1) || c.Rostered(2) {
		t.Error("out-of-range seats should not be rostered")
	}
}
