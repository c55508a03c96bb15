package main

import (
	"bytes"
	"strings"
	"testing"

	types "github.com/claon/claon-admin/internal/domain"
)

func TestBundledFixturesLoad(t *testing.T) {
	fx, err := loadFixtures(bytes.NewReader(defaultFixtures))
	if err != nil {
		t.Fatalf("loadFixtures: %v", err)
	}
	if len(fx.Users) != 3 || len(fx.Centers) != 1 || len(fx.Posts) != 2 {
		t.Fatalf("counts: users=%d centers=%d posts=%d", len(fx.Users), len(fx.Centers), len(fx.Posts))
	}
	in := fx.Centers[0].input()
	if in.Profile.Name != "Claon Seoul" || len(in.Holds) != 2 || len(in.Profile.Fees) != 2 {
		t.Fatalf("center input: got=%+v", in)
	}
	if in.Profile.OperatingTimes[0].DayOfWeek != "MON" || in.Walls[1].Type != types.WallTypeEndurance {
		t.Fatalf("nested values: got=%+v", in)
	}
	if fx.Posts[0].CreatedAt.IsZero() || !fx.Schedules[0].StartAt.Before(fx.Schedules[0].EndAt) {
		t.Fatalf("timestamps not decoded")
	}
}

func TestFixturesRejectBrokenReferences(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "unknown owner",
			doc: `
users: [{key: a, nickname: a, role: CENTER_ADMIN}]
centers: [{key: c, owner: b, name: gym}]`,
			wantErr: "unknown owner",
		},
		{
			name: "owner not admin",
			doc: `
users: [{key: a, nickname: a, role: USER}]
centers: [{key: c, owner: a, name: gym}]`,
			wantErr: "not a center admin",
		},
		{
			name: "hold from elsewhere",
			doc: `
users: [{key: a, nickname: a, role: CENTER_ADMIN}]
centers: [{key: c, owner: a, name: gym, holds: [{name: red}]}]
posts: [{center: c, user: a, climbs: [{hold: blue, count: 1}]}]`,
			wantErr: "has no hold",
		},
		{
			name:    "unknown field",
			doc:     `users: [{key: a, nickname: a, colour: red}]`,
			wantErr: "decode fixtures",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadFixtures(strings.NewReader(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err: want containing %q got=%v", tc.wantErr, err)
			}
		})
	}
}
