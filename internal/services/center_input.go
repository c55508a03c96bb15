package services

import (
	"strings"
	"unicode/utf8"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
)

const (
	maxHoldNameLength = 10
	maxWallNameLength = 20
)

// HoldInput describes one hold. ID is set when an existing hold is kept
// across an update and left empty for a new one.
type HoldInput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	IsColor    bool   `json:"is_color"`
}

type WallInput struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Type types.WallType `json:"type"`
}

// CenterInput is the full replaceable state of a center as submitted by its admin.
type CenterInput struct {
	Profile          types.CenterProfile
	Holds            []HoldInput
	Walls            []WallInput
	ApprovedFileURLs []string
}

func (in CenterInput) validate() error {
	if strings.TrimSpace(in.Profile.Name) == "" {
		return apierr.BadRequest(apierr.CodeInvalidRequest, "center name is required")
	}
	for _, h := range in.Holds {
		name := strings.TrimSpace(h.Name)
		if name == "" || utf8.RuneCountInString(name) > maxHoldNameLength {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "invalid hold name")
		}
	}
	for _, w := range in.Walls {
		name := strings.TrimSpace(w.Name)
		if name == "" || utf8.RuneCountInString(name) > maxWallNameLength {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "invalid wall name")
		}
		if w.Type != types.WallTypeEndurance && w.Type != types.WallTypeBouldering {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "invalid wall type")
		}
	}
	for _, op := range in.Profile.OperatingTimes {
		if strings.TrimSpace(op.DayOfWeek) == "" {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "operating time needs a day of week")
		}
	}
	for _, fee := range in.Profile.Fees {
		if strings.TrimSpace(fee.Name) == "" || fee.Price < 0 || fee.Count < 0 {
			return apierr.BadRequest(apierr.CodeInvalidRequest, "invalid fee")
		}
	}
	return nil
}

func (in CenterInput) holds() []*types.CenterHold {
	out := make([]*types.CenterHold, 0, len(in.Holds))
	for _, h := range in.Holds {
		out = append(out, &types.CenterHold{
			ID:         strings.TrimSpace(h.ID),
			Name:       strings.TrimSpace(h.Name),
			Difficulty: strings.TrimSpace(h.Difficulty),
			IsColor:    h.IsColor,
		})
	}
	return out
}

func (in CenterInput) walls() []*types.CenterWall {
	out := make([]*types.CenterWall, 0, len(in.Walls))
	for _, w := range in.Walls {
		out = append(out, &types.CenterWall{ID: strings.TrimSpace(w.ID), Name: strings.TrimSpace(w.Name), Type: w.Type})
	}
	return out
}

func (in CenterInput) newCenter(ownerID string) *types.Center {
	c := &types.Center{UserID: ownerID}
	c.ReplaceProfile(in.Profile)
	c.Name = strings.TrimSpace(c.Name)
	return c
}
