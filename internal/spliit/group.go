package spliit

import (
	"context"

	"github.com/cleared-dev/spliit/internal/model"
	"github.com/cleared-dev/spliit/internal/trpc"
)

const procGroup = "groups.get,groups.getDetails"

type groupArgs struct {
	GroupID string `json:"groupId"`
}

type groupPayload struct {
	Group *model.Group `json:"group"`
}

// GetGroup fetches the group with its participants in one round trip.
func (c *Client) GetGroup(ctx context.Context) (model.Group, error) {
	args := groupArgs{GroupID: c.groupID}
	var payload groupPayload
	if err := c.rpc.Query(ctx, procGroup, trpc.NewBatch(trpc.Call{JSON: args}, trpc.Call{JSON: args}), &payload); err != nil {
		return model.Group{}, err
	}
	if payload.Group == nil {
		return model.Group{}, &trpc.MalformedResponseError{Procedure: procGroup, Reason: "missing group"}
	}
	return *payload.Group, nil
}

// ParticipantID returns the ID of the first participant named name.
// A missing name is reported with ok == false, not an error.
func (c *Client) ParticipantID(ctx context.Context, name string) (id string, ok bool, err error) {
	group, err := c.GetGroup(ctx)
	if err != nil {
		return "", false, err
	}
	p, ok := group.Participant(name)
	return p.ID, ok, nil
}

// Participants returns participant IDs keyed by display name. When two
// participants share a name the later one in server order wins.
func (c *Client) Participants(ctx context.Context) (map[string]string, error) {
	group, err := c.GetGroup(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(group.Participants))
	for _, p := range group.Participants {
		if prev, dup := out[p.Name]; dup {
			c.logger.DebugContext(ctx, "duplicate participant name", "name", p.Name, "replaced_id", prev, "id", p.ID)
		}
		out[p.Name] = p.ID
	}
	return out, nil
}
