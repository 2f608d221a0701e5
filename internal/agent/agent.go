// Package agent defines the four analysis task personas and builds the
// prompt strings sent to the text-generation service. Template selection by
// task is the only branching here.
package agent

import "github.com/bizlens/analysis-backend/internal/entity"

// Agent is the persona tied to one analysis task.
type Agent struct {
	Task    entity.Task
	Title   string
	Persona string
}

var agents = map[entity.Task]Agent{
	entity.TaskStrategicPlanning: {
		Task:    entity.TaskStrategicPlanning,
		Title:   "Strategic Planning",
		Persona: "You are a strategic planning consultant helping companies define long-term direction and competitive positioning.",
	},
	entity.TaskOrganizationalAssessment: {
		Task:    entity.TaskOrganizationalAssessment,
		Title:   "Organizational Assessment",
		Persona: "You are an organizational consultant assessing company structure, culture and capabilities.",
	},
	entity.TaskOperationalEfficiency: {
		Task:    entity.TaskOperationalEfficiency,
		Title:   "Operational Efficiency Analysis",
		Persona: "You are an operations consultant identifying process bottlenecks and efficiency improvements.",
	},
	entity.TaskStakeholderEngagement: {
		Task:    entity.TaskStakeholderEngagement,
		Title:   "Stakeholder Engagement Strategy",
		Persona: "You are a communications consultant designing stakeholder engagement and alignment strategies.",
	},
}

// ForTask returns the agent persona for a task. The task must already be
// validated; unknown tasks fall back to strategic planning.
func ForTask(task entity.Task) Agent {
	if a, ok := agents[task]; ok {
		return a
	}
	return agents[entity.TaskStrategicPlanning]
}
