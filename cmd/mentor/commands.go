package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mentorlabs/mentor/internal/config"
	"github.com/mentorlabs/mentor/internal/engine"
	"github.com/mentorlabs/mentor/internal/skill"
	"github.com/mentorlabs/mentor/internal/training"
)

// localEngine builds the response engine the CLI runs against when no
// --server flag points it at a running instance.
func localEngine() (engine.Engine, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	stub := engine.NewStub(cfg.Engine.Model)
	stub.StreamDelay = time.Duration(cfg.Engine.StreamDelayMs) * time.Millisecond
	return stub, cfg.Chat.DefaultProfile, nil
}

// --- profiles ---

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect training profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available training profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range training.Names() {
			p, err := training.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", bold(name))
			fmt.Printf("  %s\n", p.Description)
			fmt.Printf("  intensity=%s focus=%s modules=%d\n\n",
				strings.ToLower(string(p.Intensity)),
				strings.ToLower(string(p.Focus)),
				len(p.SkillModules))
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a training profile in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showInstructions, _ := cmd.Flags().GetBool("instructions")

		p, err := training.Lookup(args[0])
		if err != nil {
			return err
		}

		printHeading("%s", p.Name)
		fmt.Printf("%s\n\n", p.Description)
		fmt.Printf("Intensity: %s\n", strings.ToLower(string(p.Intensity)))
		fmt.Printf("Focus:     %s\n", strings.ToLower(string(p.Focus)))
		fmt.Println("Skill modules:")
		for _, m := range p.SkillObjects() {
			fmt.Printf("  - %s: %s\n", m.Name, m.Description)
		}

		if showInstructions {
			fmt.Println()
			printHeading("Assembled instructions")
			fmt.Println(training.Assemble(p))
		}
		return nil
	},
}

func init() {
	profilesShowCmd.Flags().Bool("instructions", false, "print the full assembled instruction text")
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}

// --- skills ---

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Inspect skill modules",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available skill modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range skill.Keys() {
			m, _ := skill.Lookup(key)
			fmt.Printf("%s  %s\n", bold(fmt.Sprintf("%-18s", key)), m.Description)
		}
		return nil
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a skill module in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := skill.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown skill module %q (valid: %s)",
				args[0], strings.Join(skill.Keys(), ", "))
		}

		printHeading("%s", m.Name)
		fmt.Printf("%s\n\n", m.Description)
		fmt.Println("Core principles:")
		for _, p := range m.CorePrinciples {
			fmt.Printf("  - %s\n", p)
		}
		fmt.Println("Techniques:")
		for _, t := range m.Techniques {
			fmt.Printf("  - %s\n", t)
		}
		fmt.Println("Example prompts:")
		for _, ex := range m.ExamplePrompts() {
			fmt.Printf("  - %s\n", ex)
		}
		return nil
	},
}

func init() {
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat [profile]",
	Short: "Chat with a trained agent",
	Long: `Chat with an agent trained under the given profile. Without --message
an interactive session starts; type "quit" or "exit" to leave.

Examples:
  mentor chat legendary_sage
  mentor chat analytical_master -m "How should I evaluate this acquisition?"
  mentor chat --stream innovation_genius
  mentor chat --server http://127.0.0.1:4700 balanced_expert`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")
		stream, _ := cmd.Flags().GetBool("stream")
		server, _ := cmd.Flags().GetString("server")
		noInteractive, _ := cmd.Flags().GetBool("no-interactive")

		if noInteractive && message == "" {
			return fmt.Errorf("--no-interactive requires --message")
		}

		eng, defaultProfile, err := localEngine()
		if err != nil {
			return err
		}

		profileName := defaultProfile
		if len(args) > 0 {
			profileName = args[0]
		}

		if server != "" {
			return runRemoteChat(cmd.Context(), server, profileName, message, stream)
		}

		p, err := training.Lookup(profileName)
		if err != nil {
			return err
		}
		a := training.NewAgent("Legendary "+p.Name, p, "", "")

		printStep("Chatting with %s (%s)", a.Name, profileName)

		if message != "" {
			return runChatTurn(cmd.Context(), eng, a.Instructions, message, stream)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(bold("You> "))
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" || line == "exit" {
				return nil
			}
			if err := runChatTurn(cmd.Context(), eng, a.Instructions, line, stream); err != nil {
				return err
			}
		}
	},
}

func runChatTurn(ctx context.Context, eng engine.Engine, instructions, message string, stream bool) error {
	if stream {
		printed := 0
		for ev := range eng.Stream(ctx, instructions, message) {
			// Stream events carry the cumulative text so far.
			if len(ev.Text) > printed {
				fmt.Print(ev.Text[printed:])
				printed = len(ev.Text)
			}
		}
		fmt.Println()
		return ctx.Err()
	}

	resp, err := eng.Respond(ctx, instructions, message)
	if err != nil {
		return err
	}
	fmt.Println(resp.Text)
	fmt.Println()
	printStatus("Tokens", "%d in / %d out / %d total",
		resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens)
	return nil
}

// runRemoteChat drives the same conversation against a running server
// over its /chat endpoints.
func runRemoteChat(ctx context.Context, server, profileName, message string, stream bool) error {
	client := newRemoteClient(strings.TrimRight(server, "/"))

	oneTurn := func(msg string) error {
		req := map[string]string{"message": msg, "profile": profileName}

		if stream {
			resp, err := client.post(ctx, "/chat/stream", req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode >= 400 {
				return fmt.Errorf("server returned %d", resp.StatusCode)
			}

			printed := 0
			scanner := bufio.NewScanner(resp.Body)
			scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for scanner.Scan() {
				line := scanner.Text()
				if !strings.HasPrefix(line, "data: ") {
					continue
				}
				payload := strings.TrimPrefix(line, "data: ")
				if payload == "[DONE]" {
					break
				}
				var ev engine.Event
				if err := json.Unmarshal([]byte(payload), &ev); err != nil {
					continue
				}
				if len(ev.Text) > printed {
					fmt.Print(ev.Text[printed:])
					printed = len(ev.Text)
				}
			}
			fmt.Println()
			return scanner.Err()
		}

		resp, err := client.post(ctx, "/chat", req)
		if err != nil {
			return err
		}
		var result struct {
			Response string       `json:"response"`
			Usage    engine.Usage `json:"usage"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}
		fmt.Println(result.Response)
		fmt.Println()
		printStatus("Tokens", "%d in / %d out / %d total",
			result.Usage.InputTokens, result.Usage.OutputTokens, result.Usage.TotalTokens)
		return nil
	}

	if message != "" {
		return oneTurn(message)
	}

	printStep("Chatting with %s via %s", profileName, server)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(bold("You> "))
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := oneTurn(line); err != nil {
			return err
		}
	}
}

func init() {
	chatCmd.Flags().StringP("message", "m", "", "send a single message instead of starting an interactive session")
	chatCmd.Flags().Bool("stream", false, "stream the response as it is produced")
	chatCmd.Flags().Bool("no-interactive", false, "never start an interactive session")
	chatCmd.Flags().String("server", "", "chat via a running server at this base URL instead of in-process")
}

// --- demo ---

// demoChallenges pairs each profile with a question that plays to its
// training focus.
var demoChallenges = map[string]string{
	"legendary_sage":       "Our startup is burning cash and morale is low. What do we do?",
	"analytical_master":    "Break down whether we should build or buy our billing system.",
	"communication_expert": "Explain our security incident to non-technical customers.",
	"innovation_genius":    "We need a product idea no competitor has tried. Where do we start?",
	"ethical_leader":       "A top performer wants a raise we cannot afford. Advise me.",
	"balanced_expert":      "Sketch a plan for migrating a monolith to services.",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted tour of the training profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		only, _ := cmd.Flags().GetString("profile")

		eng, _, err := localEngine()
		if err != nil {
			return err
		}

		names := training.Names()
		if only != "" {
			if _, err := training.Lookup(only); err != nil {
				return err
			}
			names = []string{only}
		}

		for _, name := range names {
			p, err := training.Lookup(name)
			if err != nil {
				return err
			}
			challenge, ok := demoChallenges[name]
			if !ok {
				challenge = "Introduce yourself and your strengths."
			}

			printHeading("=== %s ===", p.Name)
			fmt.Printf("%s\n\n", p.Description)
			fmt.Printf("%s %s\n\n", bold("Challenge:"), challenge)

			a := training.NewAgent("Legendary "+p.Name, p, "", "")
			resp, err := eng.Respond(cmd.Context(), a.Instructions, challenge)
			if err != nil {
				return err
			}
			fmt.Println(resp.Text)
			fmt.Println()
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringP("profile", "p", "", "run the demo for a single profile")
}

// --- info ---

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the training system",
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeading("mentor %s", version)
		fmt.Println()
		fmt.Println("Training profiles bundle skill modules with an intensity and a")
		fmt.Println("focus area. Applying a profile to an agent assembles a complete")
		fmt.Println("instruction text; a deterministic engine answers in character so")
		fmt.Println("the whole system runs offline.")
		fmt.Println()
		printStatus("Profiles", "%d (mentor profiles list)", len(training.Names()))
		printStatus("Skill modules", "%d (mentor skills list)", len(skill.Keys()))
		printStatus("Intensities", "basic, intermediate, advanced, legendary")
		printStatus("Focus areas", "analytical, interpersonal, creative, ethical, comprehensive")
		printStatus("Server", "mentor serve, then POST /chat or connect /ws/{session}")
		return nil
	},
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		for _, k := range config.ShowAll(cfg) {
			fmt.Printf("  %s = %s\n", bold(k.Key), k.Value)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetKey(key, value); err != nil {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(config.ValidKeys(), ", "))
		}

		printSuccess("Set %s = %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
