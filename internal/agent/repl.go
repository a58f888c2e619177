package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/mark3labs/mcp-go/mcp"
)

// REPL is an interactive loop for exploring and executing the server's
// tools and resources, with tab completion over tool names and persistent
// history.
type REPL struct {
	client *Client
	rl     *readline.Instance
}

// NewREPL creates a REPL around a connected client.
func NewREPL(client *Client) *REPL {
	return &REPL{client: client}
}

// Run starts the interactive loop and blocks until the user exits or the
// context is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	historyFile := filepath.Join(os.TempDir(), ".atoms_mcp_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "atoms> ",
		HistoryFile:       historyFile,
		AutoComplete:      r.buildCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	fmt.Println("Connected. Type 'help' for available commands, TAB to complete tool names.")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue
			}
		} else if err == io.EOF {
			fmt.Println("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if err := r.execute(ctx, input); err != nil {
			if err == errExit {
				fmt.Println("Goodbye!")
				return nil
			}
			fmt.Printf("Error: %v\n", err)
		}
	}
}

var errExit = fmt.Errorf("exit")

func (r *REPL) execute(ctx context.Context, input string) error {
	command, rest := splitCommand(input)

	switch command {
	case "help", "?":
		r.printHelp()
		return nil
	case "tools", "list":
		return r.printTools()
	case "describe":
		if rest == "" {
			return fmt.Errorf("usage: describe <tool>")
		}
		return r.describeTool(rest)
	case "call":
		return r.callTool(ctx, rest)
	case "resources":
		return r.printResources()
	case "resource":
		if rest == "" {
			return fmt.Errorf("usage: resource <uri>")
		}
		return r.readResource(ctx, rest)
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("unknown command %q, type 'help' for available commands", command)
	}
}

// splitCommand separates the command word from the rest of the line.
func splitCommand(input string) (string, string) {
	parts := strings.SplitN(input, " ", 2)
	command := parts[0]
	rest := ""
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return command, rest
}

// parseCallArgs splits a call line into the tool name and its JSON argument
// object. The argument object is optional.
func parseCallArgs(rest string) (string, map[string]interface{}, error) {
	if rest == "" {
		return "", nil, fmt.Errorf("usage: call <tool> [json-args]")
	}
	name, argText := splitCommand(rest)
	args := map[string]interface{}{}
	if argText != "" {
		if err := json.Unmarshal([]byte(argText), &args); err != nil {
			return "", nil, fmt.Errorf("invalid JSON arguments: %w", err)
		}
	}
	return name, args, nil
}

func (r *REPL) printHelp() {
	fmt.Print(`Available commands:
  tools                      List available tools
  describe <tool>            Show a tool's parameters
  call <tool> [json-args]    Execute a tool, e.g. call get_agents {"limit": 5}
  resources                  List available resources
  resource <uri>             Read a resource by URI
  help                       Show this help
  exit                       Leave the REPL
`)
}

func (r *REPL) printTools() error {
	tools := r.client.Tools()
	if len(tools) == 0 {
		fmt.Println("No tools available.")
		return nil
	}
	for _, tool := range tools {
		fmt.Printf("  %-22s %s\n", tool.Name, firstLine(tool.Description))
	}
	return nil
}

func (r *REPL) describeTool(name string) error {
	tool := r.client.FindTool(name)
	if tool == nil {
		return fmt.Errorf("unknown tool: %s", name)
	}
	fmt.Printf("%s\n  %s\n", tool.Name, tool.Description)
	if len(tool.InputSchema.Properties) == 0 {
		fmt.Println("  No parameters.")
		return nil
	}
	required := map[string]bool{}
	for _, name := range tool.InputSchema.Required {
		required[name] = true
	}
	fmt.Println("  Parameters:")
	for name, prop := range tool.InputSchema.Properties {
		marker := ""
		if required[name] {
			marker = " (required)"
		}
		description := ""
		if propMap, ok := prop.(map[string]interface{}); ok {
			description, _ = propMap["description"].(string)
		}
		fmt.Printf("    %s%s: %s\n", name, marker, description)
	}
	return nil
}

func (r *REPL) callTool(ctx context.Context, rest string) error {
	name, args, err := parseCallArgs(rest)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Calling %s...", name)
	s.Start()
	result, err := r.client.CallTool(ctx, name, args)
	s.Stop()

	if err != nil {
		return fmt.Errorf("tool call failed: %w", err)
	}
	for _, content := range result.Content {
		if text, ok := content.(mcp.TextContent); ok {
			fmt.Println(text.Text)
		}
	}
	if result.IsError {
		fmt.Println("(tool reported an error)")
	}
	return nil
}

func (r *REPL) printResources() error {
	resources := r.client.Resources()
	if len(resources) == 0 {
		fmt.Println("No resources available.")
		return nil
	}
	for _, resource := range resources {
		fmt.Printf("  %-22s %s\n", resource.Name, resource.URI)
	}
	return nil
}

func (r *REPL) readResource(ctx context.Context, uri string) error {
	result, err := r.client.ReadResource(ctx, uri)
	if err != nil {
		return fmt.Errorf("resource read failed: %w", err)
	}
	for _, content := range result.Contents {
		if text, ok := content.(mcp.TextResourceContents); ok {
			fmt.Println(text.Text)
		}
	}
	return nil
}

// buildCompleter creates tab completion over commands and cached tool names.
func (r *REPL) buildCompleter() readline.AutoCompleter {
	toolNames := func(string) []string {
		tools := r.client.Tools()
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
		}
		return names
	}
	resourceURIs := func(string) []string {
		resources := r.client.Resources()
		uris := make([]string, 0, len(resources))
		for _, resource := range resources {
			uris = append(uris, resource.URI)
		}
		return uris
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("tools"),
		readline.PcItem("describe", readline.PcItemDynamic(toolNames)),
		readline.PcItem("call", readline.PcItemDynamic(toolNames)),
		readline.PcItem("resources"),
		readline.PcItem("resource", readline.PcItemDynamic(resourceURIs)),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	)
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
