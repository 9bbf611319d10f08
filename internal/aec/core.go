// Package aec implements the bookkeeping half of an agent-environment-cycle
// contract: a fixed roster of agents, exactly one of which may act at a time,
// with per-agent termination, truncation, reward and info state.
//
// Environments embed Core and drive it from their own transition logic. Core
// never inspects domain state; it only tracks who is finished, what each agent
// has earned this step, and what has accumulated over the episode.
package aec

// None is the agent selection when no agent is required to act.
const None = -1

// Core holds the per-agent bookkeeping shared by all AEC environments.
type Core struct {
	// PossibleAgents is the full roster, fixed at construction.
	PossibleAgents []int
	// Agents is the active roster for the current episode.
	Agents []int

	Terminations map[int]bool
	Truncations  map[int]bool

	// Rewards holds the instantaneous reward earned by each agent during the
	// most recent step. Visible for exactly one step.
	Rewards map[int]int
	// Cumulative holds each agent's episode total.
	Cumulative map[int]int

	Infos map[int]map[string]any

	// Selection is the agent currently required to act, or None.
	Selection int
}

// NewCore creates bookkeeping for agents 0..agentCount-1.
func NewCore(agentCount int) *Core {
	possible := make([]int, agentCount)
	for i := range possible {
		possible[i] = i
	}
	c := &Core{
		PossibleAgents: possible,
		Selection:      None,
	}
	c.Reset()
	return c
}

// Reset repopulates the active roster from the possible roster and restores
// every agent's bookkeeping to neutral values.
func (c *Core) Reset() {
	c.Agents = append(c.Agents[:0], c.PossibleAgents...)
	c.Terminations = make(map[int]bool, len(c.Agents))
	c.Truncations = make(map[int]bool, len(c.Agents))
	c.Rewards = make(map[int]int, len(c.Agents))
	c.Cumulative = make(map[int]int, len(c.Agents))
	c.Infos = make(map[int]map[string]any, len(c.Agents))
	for _, agent := range c.Agents {
		c.Terminations[agent] = false
		c.Truncations[agent] = false
		c.Rewards[agent] = 0
		c.Cumulative[agent] = 0
		c.Infos[agent] = map[string]any{}
	}
	c.Selection = None
}

// Rostered reports whether agent is on the possible roster.
func (c *Core) Rostered(agent int) bool {
	return agent >= 0 && agent < len(c.PossibleAgents)
}

// Done reports whether agent has terminated or been truncated.
func (c *Core) Done(agent int) bool {
	return c.Terminations[agent] || c.Truncations[agent]
}

// ClearRewards zeroes every agent's instantaneous reward.
func (c *Core) ClearRewards() {
	for agent := range c.Rewards {
		c.Rewards[agent] = 0
	}
}

// AccumulateRewards folds each agent's instantaneous reward into its
// episode total. Called once per transition.
func (c *Core) AccumulateRewards() {
	for agent, r := range c.Rewards {
		c.Cumulative[agent] += r
	}
}

// TerminateAll marks every active agent as terminated.
func (c *Core) TerminateAll() {
	for _, agent := range c.Agents {
		c.Terminations[agent] = true
	}
}

// DeadStep handles a step addressed to an already-finished agent: the agent
// leaves the active roster and selection advances to the next finished or
// live agent in roster order. No reward is earned by anyone.
func (c *Core) DeadStep() {
	agent := c.Selection
	c.ClearRewards()
	for i, a := range c.Agents {
		if a == agent {
			c.Agents = append(c.Agents[:i], c.Agents[i+1:]...)
			break
		}
	}
	if len(c.Agents) == 0 {
		c.Selection = None
		return
	}
	// Next rostered agent after the removed one, wrapping around.
	for _, a := range c.Agents {
		if a > agent {
			c.Selection = a
			return
		}
	}
	c.Selection = c.Agents[0]
}
