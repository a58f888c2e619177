package tools

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"atoms-mcp/internal/atoms"
	"atoms-mcp/pkg/logging"
)

// agentSearchPageSize bounds the preliminary name-resolution lookup.
const agentSearchPageSize = 5

// resolveAgentID translates a human-readable agent name into an agent id by
// searching the agent list. When several agents match the partial name, the
// first search result wins deterministically; the match count is logged so
// ambiguity is at least visible.
//
// Returns the id and match count on success. A zero count with a nil error
// means no agents matched; callers short-circuit with their own message. A
// non-OK transport result is returned for the caller to format.
func (p *Provider) resolveAgentID(ctx context.Context, name string) (string, int, atoms.Result, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("offset", strconv.Itoa(agentSearchPageSize))
	query.Set("search", name)

	result, err := p.gateway.Do(ctx, http.MethodGet, "/agent?"+query.Encode(), nil)
	if err != nil {
		return "", 0, atoms.Result{}, err
	}
	if !result.OK {
		return "", 0, result, nil
	}

	var payload struct {
		Agents []atoms.Agent `json:"agents"`
	}
	if err := atoms.Decode(atoms.Unwrap(result.Data), &payload); err != nil || len(payload.Agents) == 0 {
		return "", 0, result, nil
	}

	if len(payload.Agents) > 1 {
		logging.Debug("Tools", "Agent name %q matched %d agents, using first (%s)",
			name, len(payload.Agents), payload.Agents[0].ID)
	}
	return payload.Agents[0].ID, len(payload.Agents), result, nil
}
