package engine

// Canned response keys. One per named profile signature, plus the generic
// legendary-training bucket and the default fallback.
const (
	responseLegendarySage       = "legendary_sage"
	responseAnalyticalMaster    = "analytical_master"
	responseCommunicationExpert = "communication_expert"
	responseInnovationGenius    = "innovation_genius"
	responseGenericLegendary    = "generic_legendary"
	responseDefault             = "default"
)

// cannedResponses is read-only process-wide state; safe for unsynchronized
// concurrent reads.
var cannedResponses = map[string]string{
	responseLegendarySage: `As a legendary sage with master-level capabilities across all domains, I approach this challenge with comprehensive wisdom:

**Multi-Domain Analysis:**
Drawing from business strategy, psychology, systems science, and organizational behavior, I see this as a systems transformation challenge that requires coordinated action across several dimensions at once.

**Strategic Framework:**
1. **Stakeholder Alignment**: Map every stakeholder perspective and build a shared vision
2. **Phased Implementation**: Design a transition roadmap that balances urgency with sustainability
3. **Change Management**: Address resistance through engagement, education, and incentives
4. **Metrics Integration**: Establish success measures linking outcomes, viability, and satisfaction

**Ethical Considerations:**
The path chosen here carries obligations to the people affected today and to those who inherit the consequences tomorrow; both deserve a seat in the analysis.

**Creative Solutions:**
Consider cross-functional teams in which the people closest to the problem lead the change themselves, creating ownership, reducing resistance, and surfacing approaches no central plan would find.

Progress of this kind requires patience, wisdom, and the courage to make difficult decisions for long-term benefit.`,

	responseAnalyticalMaster: `**Comprehensive Analysis Framework:**

**Primary Factors:**
- Rate of technological change and adoption across the affected sectors
- Resilience and adaptation capacity of the surrounding systems
- Responsiveness of institutions to shifting conditions
- Evolution of the policy and regulatory environment

**Data Points to Consider:**
- Historical adoption patterns for comparable technologies
- Displacement versus creation ratios in adjacent industries
- Transferability of existing skills and infrastructure
- Regional variation in adaptive capacity

**Assumptions to Question:**
1. Linear progression - disruption is frequently non-linear
2. Uniform impact - effects will vary dramatically by sector and geography
3. Historical precedent - the present case may be genuinely unprecedented

**Scenario Analysis:**
- **Optimistic**: net gains through new capabilities and enhanced productivity
- **Moderate**: modest displacement offset by retraining and newly created roles
- **Pessimistic**: structural dislocation requiring significant intervention

**Critical Dependencies:**
Which scenario materializes depends on how quickly supporting institutions adapt, how effective the policy response is, and how robust the safety nets prove to be.`,

	responseCommunicationExpert: `**Audience-Adapted Explanations:**

**For a curious twelve-year-old:**
"Imagine a coin that is heads AND tails at the same time until you look at it. Some systems work like that magic coin: instead of checking one answer after another, they explore many answers at once, which makes certain puzzles dramatically faster to solve."

**For executives evaluating an investment:**
"This represents a shift in capability with real strategic implications. The considerations: timing, since we are in the late-research, early-commercial phase; competitive advantage in optimization-heavy industries; risk mitigation where the technology threatens current practice; and partnership opportunities with specialists. Expect a multi-year horizon before transformative returns."

**For students of the field:**
"A rigorous explanation starts from the underlying principles, names the canonical results that demonstrate the advantage, states the open engineering challenges honestly, and lists the foundations worth studying before going deeper."

Each explanation preserves accuracy while matching the audience's context, prior knowledge, and decision-making needs. That is the core of expert communication: the same truth, shaped for the listener.`,

	responseInnovationGenius: `**Reimagining the Problem: Unconventional Approaches**

**Paradigm Shift: From Managing a Problem to Designing a Value Ecosystem**

**1. Gamified Participation Networks:**
Turn the chore into an adventure: communities identify, capture, and redistribute overlooked value through lightweight app-based play.

**2. Time-Shifted Matching:**
Commit future surplus to pre-registered demand through prediction, converting would-be waste into guaranteed supply.

**3. Conversion Hubs:**
Transform the discarded into the valuable through mobile processing that rotates to where the raw material appears.

**4. Social Architecture:**
Design sharing rituals into everyday spaces so that rescue and reuse become celebrated norms rather than concessions.

**5. Demand Orchestration:**
Match surplus against real-time demand signals across the whole chain, so nothing sits long enough to be lost.

**Cross-Pollination Insight:** combining circular-economy thinking, behavioral economics, and network theory produces emergent solutions that linear approaches miss. The key move is shifting from "managing waste" to "choreographing abundance."`,

	responseGenericLegendary: `As an AI agent enhanced with legendary training capabilities, I bring together:

**Multi-Domain Expertise**: Drawing from diverse fields to provide comprehensive insights
**Advanced Problem-Solving**: Systematic analysis with creative and ethical considerations
**Exceptional Communication**: Clear, audience-appropriate explanations and recommendations
**Ethical Reasoning**: Principled decision-making that considers all stakeholders
**Meta-Cognitive Awareness**: Transparent thinking processes and continuous improvement

I approach your question with the wisdom and capabilities that legendary training provides, ensuring thoughtful, well-reasoned responses that demonstrate excellence across multiple knowledge domains.`,

	responseDefault: `Thank you for your question. As an AI agent, I approach this with systematic thinking:

**Analysis:** I'll break down the key components and consider multiple perspectives on this challenge.

**Considerations:** Drawing from relevant expertise domains, I recognize the importance of understanding context, stakeholders, and potential implications.

**Approach:** Using structured problem-solving methodology combined with creative thinking and ethical reasoning to develop comprehensive solutions.

**Response:** Based on the information provided, I would recommend a thoughtful, evidence-based approach that considers both immediate needs and long-term consequences while respecting all stakeholders involved.

This challenge requires careful consideration of multiple factors, and I'm prepared to dive deeper into specific aspects you'd like to explore further.`,
}
