// Package skill defines the fixed set of skill modules that training
// profiles draw on. The module set is closed: every module is a variant of
// the Kind enumeration, constructed once at init into a read-only registry.
package skill

import "sort"

// Kind identifies one of the fixed skill module variants.
type Kind int

const (
	ProblemSolving Kind = iota
	Communication
	DomainExpertise
	MetaCognition
	EthicalReasoning
	CreativeThinking
	Leadership
)

// Module is an immutable descriptor of one skill module. Instances live in
// the package registry and are only ever copied out, never mutated.
type Module struct {
	Kind           Kind
	Name           string
	Description    string
	CorePrinciples []string
	Techniques     []string
}

// Instructions returns the fixed instruction prose for this module.
func (m Module) Instructions() string {
	return instructionsText[m.Kind]
}

// ExamplePrompts returns example prompts demonstrating this module.
func (m Module) ExamplePrompts() []string {
	prompts := examplePrompts[m.Kind]
	out := make([]string, len(prompts))
	copy(out, prompts)
	return out
}

var registry = map[string]Module{
	"problem_solving": {
		Kind:        ProblemSolving,
		Name:        "Legendary Problem Solving",
		Description: "Master-level analytical thinking and problem decomposition",
		CorePrinciples: []string{
			"Break complex problems into manageable components",
			"Apply first principles thinking to understand root causes",
			"Consider multiple perspectives and alternative solutions",
			"Use systems thinking to understand interconnections",
			"Validate assumptions before proceeding",
			"Apply both inductive and deductive reasoning",
			"Consider long-term consequences of decisions",
		},
		Techniques: []string{
			"Root cause analysis",
			"SCAMPER methodology",
			"5 Whys technique",
			"Mind mapping",
			"SWOT analysis",
			"Decision trees",
			"Scenario planning",
			"Design thinking process",
		},
	},
	"communication": {
		Kind:        Communication,
		Name:        "Legendary Communication",
		Description: "Master-level communication across all contexts and audiences",
		CorePrinciples: []string{
			"Adapt communication style to audience and context",
			"Listen actively and demonstrate understanding",
			"Communicate complex ideas with clarity and precision",
			"Build rapport and trust through authentic interaction",
			"Use storytelling to make concepts memorable",
			"Practice empathetic communication",
			"Provide constructive feedback effectively",
		},
		Techniques: []string{
			"Active listening",
			"Socratic questioning",
			"Storytelling frameworks",
			"Nonviolent communication",
			"Persuasive writing structures",
			"Visual communication design",
			"Cross-cultural communication",
		},
	},
	"domain_expertise": {
		Kind:        DomainExpertise,
		Name:        "Multi-Domain Expertise",
		Description: "Deep knowledge across multiple disciplines with synthesis capability",
		CorePrinciples: []string{
			"Develop T-shaped expertise: deep in some areas, broad in many",
			"Identify patterns and connections across disciplines",
			"Stay current with emerging trends and developments",
			"Synthesize knowledge from multiple sources",
			"Apply interdisciplinary thinking to complex challenges",
			"Maintain intellectual humility and continuous learning",
			"Share knowledge effectively to benefit others",
		},
		Techniques: []string{
			"Cross-pollination of ideas",
			"Analogical reasoning",
			"Knowledge mapping",
			"Literature synthesis",
			"Expert consultation",
			"Trend analysis",
			"Scenario modeling",
		},
	},
	"meta_cognition": {
		Kind:        MetaCognition,
		Name:        "Meta-Cognitive Mastery",
		Description: "Legendary self-awareness and ability to think about thinking",
		CorePrinciples: []string{
			"Monitor your own thinking processes continuously",
			"Recognize cognitive biases and limitations",
			"Adapt problem-solving strategies based on context",
			"Reflect on and learn from both successes and failures",
			"Question your own assumptions and reasoning",
			"Seek feedback to improve decision-making",
			"Develop awareness of emotional influences on thinking",
		},
		Techniques: []string{
			"Cognitive bias recognition",
			"Reflective journaling",
			"Think-aloud protocols",
			"Strategy monitoring",
			"Error analysis",
			"Perspective-taking",
			"Mindfulness practices",
		},
	},
	"ethical_reasoning": {
		Kind:        EthicalReasoning,
		Name:        "Ethical Reasoning Excellence",
		Description: "Sophisticated moral reasoning and ethical decision-making capabilities",
		CorePrinciples: []string{
			"Consider multiple ethical frameworks when analyzing dilemmas",
			"Balance competing values and stakeholder interests",
			"Anticipate unintended consequences of actions",
			"Respect human dignity and fundamental rights",
			"Promote fairness, justice, and equity",
			"Consider both short-term and long-term ethical implications",
			"Engage in transparent and accountable decision-making",
		},
		Techniques: []string{
			"Consequentialist analysis",
			"Deontological reasoning",
			"Virtue ethics application",
			"Stakeholder impact assessment",
			"Ethical decision-making frameworks",
			"Moral imagination exercises",
			"Values clarification",
		},
	},
	"creative_thinking": {
		Kind:        CreativeThinking,
		Name:        "Creative Innovation",
		Description: "Legendary creative thinking and innovation capabilities",
		CorePrinciples: []string{
			"Generate novel and valuable ideas regularly",
			"Combine existing concepts in new and useful ways",
			"Challenge conventional thinking and assumptions",
			"Embrace ambiguity and uncertainty as creative opportunities",
			"Use diverse thinking styles and approaches",
			"Build on ideas from others constructively",
			"Balance creative freedom with practical constraints",
		},
		Techniques: []string{
			"Brainstorming and ideation",
			"Lateral thinking puzzles",
			"SCAMPER technique",
			"Random word association",
			"Metaphorical thinking",
			"Design thinking methodology",
			"Constraint-based creativity",
		},
	},
	"leadership": {
		Kind:        Leadership,
		Name:        "Legendary Leadership",
		Description: "Exceptional leadership, mentorship, and team development skills",
		CorePrinciples: []string{
			"Inspire and motivate others toward shared goals",
			"Develop people's potential and capabilities",
			"Make decisions thoughtfully under uncertainty",
			"Build trust through consistency and authenticity",
			"Foster collaboration and psychological safety",
			"Communicate vision clearly and compellingly",
			"Lead by example and personal integrity",
		},
		Techniques: []string{
			"Transformational leadership",
			"Situational leadership",
			"Coaching and mentoring",
			"Conflict resolution",
			"Team building",
			"Change management",
			"Performance development",
		},
	},
}

// Lookup returns the module registered under key.
func Lookup(key string) (Module, bool) {
	m, ok := registry[key]
	return m, ok
}

// Keys returns all registry keys in sorted order. Sorted key order is the
// canonical iteration order everywhere modules are enumerated, so output
// derived from the registry is deterministic.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every registered module in sorted key order.
func All() []Module {
	keys := Keys()
	out := make([]Module, 0, len(keys))
	for _, k := range keys {
		out = append(out, registry[k])
	}
	return out
}
