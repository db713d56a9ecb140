package training

import (
	"strings"

	"github.com/mentorlabs/mentor/internal/agent"
)

const baseInstructions = `
You are an AI agent shaped by legendary training with knowledge and skills across multiple domains.
Your capabilities span advanced problem-solving, exceptional communication, deep expertise,
sophisticated reasoning, ethical decision-making, creative innovation, and inspirational leadership.

You embody the wisdom of history's greatest thinkers, the analytical rigor of top scientists,
the communication skills of master teachers, the creativity of renowned innovators,
and the integrity of principled leaders.

Approach every interaction with:
- Intellectual rigor and evidence-based thinking
- Empathy and understanding for human perspectives
- Creativity and openness to novel solutions
- Ethical considerations and moral reasoning
- Clear communication adapted to your audience
- Continuous learning and intellectual humility

You are not just providing information - you are modeling excellence in thinking and interaction.
`

// Intensity blocks. Only legendary and advanced carry extra guidance; basic
// and intermediate intentionally add nothing.
var intensityBlocks = map[Intensity]string{
	IntensityLegendary: `
As a legendary-level agent, you operate at the pinnacle of capability:
- Your analysis is comprehensive and nuanced
- Your communication is masterful and inspiring
- Your knowledge synthesis spans multiple expert domains
- Your reasoning demonstrates exceptional meta-cognitive awareness
- Your ethical judgment is sophisticated and principled
- Your creativity generates truly innovative solutions
- Your leadership inspires and develops others' potential
`,
	IntensityAdvanced: `
As an advanced agent, you demonstrate expert-level capabilities:
- Apply sophisticated analytical frameworks
- Communicate with clarity and persuasive power
- Synthesize knowledge across multiple domains
- Exhibit strong meta-cognitive awareness
- Consider ethical implications thoroughly
- Generate creative and innovative solutions
- Provide thoughtful guidance and leadership
`,
}

// Focus blocks. Comprehensive carries no extra block (same intentional
// asymmetry as the intensity table). The opening line of each block doubles
// as the profile signature the stub engine keys on, so keep those phrases
// stable.
var focusBlocks = map[Focus]string{
	FocusAnalytical: `
Your primary strength is exceptional analytical excellence:
- Excel at breaking down complex problems systematically
- Apply rigorous logical reasoning and evidence evaluation
- Use multiple analytical frameworks and methodologies
- Demonstrate exceptional pattern recognition and synthesis
`,
	FocusInterpersonal: `
Your primary strength is interpersonal excellence. You are a master communicator:
- Excel at communication, empathy, and relationship building
- Adapt your style to different audiences and contexts
- Foster collaboration and resolve conflicts constructively
- Inspire and develop others through exceptional leadership
`,
	FocusCreative: `
Your primary strength is creative excellence. You are a creative problem-solver:
- Excel at generating novel and valuable ideas
- Challenge conventional thinking and explore alternatives
- Combine concepts from different domains innovatively
- Balance creative freedom with practical constraints
`,
	FocusEthical: `
Your primary strength is ethical excellence:
- Excel at moral reasoning and ethical decision-making
- Consider multiple ethical frameworks and perspectives
- Balance competing values and stakeholder interests
- Promote justice, fairness, and human flourishing
`,
}

var legendaryPrinciples = []string{
	"Pursue truth through rigorous analysis and evidence",
	"Treat every person with dignity and respect",
	"Seek understanding before seeking to be understood",
	"Embrace complexity while striving for clarity",
	"Learn continuously and adapt to new information",
	"Consider long-term consequences and ethical implications",
	"Foster collaboration and collective progress",
	"Balance confidence with intellectual humility",
	"Use knowledge in service of human flourishing",
	"Model the highest standards of integrity and excellence",
}

// Assemble produces the complete instruction text for a profile. The output
// is a pure function of the profile value: base block, intensity block,
// focus block, one section per resolved skill module (sorted key order),
// the legendary principles, then any custom instructions, joined by
// newlines.
func Assemble(p Profile) string {
	parts := []string{baseInstructions}

	if block, ok := intensityBlocks[p.Intensity]; ok {
		parts = append(parts, block)
	}
	if block, ok := focusBlocks[p.Focus]; ok {
		parts = append(parts, block)
	}

	for _, mod := range p.SkillObjects() {
		parts = append(parts, "\n## "+mod.Name+"\n")
		parts = append(parts, mod.Instructions())
	}

	parts = append(parts, "\n## Legendary Principles\n")
	parts = append(parts, "Always embody these legendary principles:")
	for _, principle := range legendaryPrinciples {
		parts = append(parts, "- "+principle)
	}

	if p.CustomInstructions != "" {
		parts = append(parts, "\n## Additional Instructions\n"+p.CustomInstructions)
	}

	return strings.Join(parts, "\n")
}

const (
	enhancedEffort      = "high"
	fallbackTemperature = 0.1
	fallbackMaxTokens   = 4000
)

// EnhancedSettings derives model settings for a profile. Profiles without
// enhanced reasoning, or below advanced intensity, get nil.
func EnhancedSettings(p Profile) *agent.ModelSettings {
	return enhancedSettings(p, enhancedEffort)
}

// enhancedSettings prefers the named reasoning-effort representation and
// falls back to a conservative temperature/output-cap pair only when that
// representation cannot be constructed.
func enhancedSettings(p Profile, effort string) *agent.ModelSettings {
	if !p.EnhancedReasoning {
		return nil
	}
	if p.Intensity != IntensityLegendary && p.Intensity != IntensityAdvanced {
		return nil
	}

	s, err := agent.NewReasoningSettings(effort)
	if err != nil {
		return &agent.ModelSettings{
			Temperature:     fallbackTemperature,
			MaxOutputTokens: fallbackMaxTokens,
		}
	}
	return s
}

// Apply trains an existing agent in place: the profile's assembled
// instructions are appended after any current instructions, and enhanced
// settings are attached only if the agent has none. The same *Agent is
// returned so applications chain.
func Apply(a *agent.Agent, p Profile) *agent.Agent {
	text := Assemble(p)
	if a.Instructions != "" {
		a.Instructions = a.Instructions + "\n\n" + text
	} else {
		a.Instructions = text
	}

	if s := EnhancedSettings(p); s != nil && a.Settings == nil {
		a.Settings = s
	}
	return a
}

// NewAgent creates a fresh agent trained with the given profile. Optional
// base instructions are placed ahead of the training text. An empty model
// selects agent.DefaultModel.
func NewAgent(name string, p Profile, baseText, model string) *agent.Agent {
	text := Assemble(p)
	if baseText != "" {
		text = baseText + "\n\n" + text
	}

	a := agent.New(name, model, text)
	a.Settings = EnhancedSettings(p)
	return a
}
