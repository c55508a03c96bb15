package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/services"
)

type fixtures struct {
	Users     []userFixture     `yaml:"users"`
	Centers   []centerFixture   `yaml:"centers"`
	Posts     []postFixture     `yaml:"posts"`
	Reviews   []reviewFixture   `yaml:"reviews"`
	Schedules []scheduleFixture `yaml:"schedules"`
}

type userFixture struct {
	Key           string     `yaml:"key"`
	Email         string     `yaml:"email"`
	Nickname      string     `yaml:"nickname"`
	InstagramName string     `yaml:"instagram_name"`
	Role          types.Role `yaml:"role"`
}

type centerFixture struct {
	Key           string             `yaml:"key"`
	Owner         string             `yaml:"owner"`
	Approved      bool               `yaml:"approved"`
	Name          string             `yaml:"name"`
	ProfileImage  string             `yaml:"profile_image"`
	Address       string             `yaml:"address"`
	DetailAddress string             `yaml:"detail_address"`
	Tel           string             `yaml:"tel"`
	WebURL        string             `yaml:"web_url"`
	InstagramName string             `yaml:"instagram_name"`
	YoutubeURL    string             `yaml:"youtube_url"`
	OperatingTime []operatingFixture `yaml:"operating_time"`
	CenterImg     []urlFixture       `yaml:"center_img"`
	Utility       []nameFixture      `yaml:"utility"`
	Fee           []feeFixture       `yaml:"fee"`
	FeeImg        []urlFixture       `yaml:"fee_img"`
	Holds         []holdFixture      `yaml:"holds"`
	Walls         []wallFixture      `yaml:"walls"`
	ApprovedFiles []string           `yaml:"approved_files"`
}

type operatingFixture struct {
	DayOfWeek string `yaml:"day_of_week"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type urlFixture struct {
	URL string `yaml:"url"`
}

type nameFixture struct {
	Name string `yaml:"name"`
}

type feeFixture struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
	Count int    `yaml:"count"`
}

type holdFixture struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Difficulty string `yaml:"difficulty"`
	IsColor    bool   `yaml:"is_color"`
}

type wallFixture struct {
	ID   string         `yaml:"id"`
	Name string         `yaml:"name"`
	Type types.WallType `yaml:"type"`
}

type climbFixture struct {
	Hold  string `yaml:"hold"`
	Count int    `yaml:"count"`
}

type postFixture struct {
	Center    string         `yaml:"center"`
	User      string         `yaml:"user"`
	Content   string         `yaml:"content"`
	Images    []string       `yaml:"images"`
	CreatedAt time.Time      `yaml:"created_at"`
	Climbs    []climbFixture `yaml:"climbs"`
}

type reviewFixture struct {
	Center  string   `yaml:"center"`
	User    string   `yaml:"user"`
	Content string   `yaml:"content"`
	Tags    []string `yaml:"tags"`
	Answer  string   `yaml:"answer"`
}

type scheduleFixture struct {
	Center      string    `yaml:"center"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	StartAt     time.Time `yaml:"start_at"`
	EndAt       time.Time `yaml:"end_at"`
}

func loadFixtures(r io.Reader) (*fixtures, error) {
	var f fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// validate checks that every cross reference names a declared key.
func (f *fixtures) validate() error {
	users := map[string]types.Role{}
	for _, u := range f.Users {
		if strings.TrimSpace(u.Key) == "" || strings.TrimSpace(u.Nickname) == "" {
			return fmt.Errorf("user fixture needs key and nickname")
		}
		if _, dup := users[u.Key]; dup {
			return fmt.Errorf("duplicate user key %q", u.Key)
		}
		users[u.Key] = u.Role
	}
	holds := map[string]map[string]bool{}
	for _, c := range f.Centers {
		role, ok := users[c.Owner]
		if !ok {
			return fmt.Errorf("center %q: unknown owner %q", c.Key, c.Owner)
		}
		if role != types.RoleCenterAdmin {
			return fmt.Errorf("center %q: owner %q is not a center admin", c.Key, c.Owner)
		}
		if _, dup := holds[c.Key]; dup {
			return fmt.Errorf("duplicate center key %q", c.Key)
		}
		names := map[string]bool{}
		for _, h := range c.Holds {
			names[h.Name] = true
		}
		holds[c.Key] = names
	}
	for i, p := range f.Posts {
		names, ok := holds[p.Center]
		if !ok {
			return fmt.Errorf("post %d: unknown center %q", i, p.Center)
		}
		if _, ok := users[p.User]; !ok {
			return fmt.Errorf("post %d: unknown user %q", i, p.User)
		}
		for _, cl := range p.Climbs {
			if !names[cl.Hold] {
				return fmt.Errorf("post %d: center %q has no hold %q", i, p.Center, cl.Hold)
			}
		}
	}
	for i, r := range f.Reviews {
		if _, ok := holds[r.Center]; !ok {
			return fmt.Errorf("review %d: unknown center %q", i, r.Center)
		}
		if _, ok := users[r.User]; !ok {
			return fmt.Errorf("review %d: unknown user %q", i, r.User)
		}
	}
	for i, s := range f.Schedules {
		if _, ok := holds[s.Center]; !ok {
			return fmt.Errorf("schedule %d: unknown center %q", i, s.Center)
		}
	}
	return nil
}

func (c centerFixture) input() services.CenterInput {
	in := services.CenterInput{
		Profile: types.CenterProfile{
			Name:          c.Name,
			ProfileImage:  c.ProfileImage,
			Address:       c.Address,
			DetailAddress: c.DetailAddress,
			Tel:           c.Tel,
			WebURL:        c.WebURL,
			InstagramName: c.InstagramName,
			YoutubeURL:    c.YoutubeURL,
		},
		ApprovedFileURLs: c.ApprovedFiles,
	}
	for _, op := range c.OperatingTime {
		in.Profile.OperatingTimes = append(in.Profile.OperatingTimes, types.OperatingTime(op))
	}
	for _, img := range c.CenterImg {
		in.Profile.Images = append(in.Profile.Images, types.CenterImage(img))
	}
	for _, u := range c.Utility {
		in.Profile.Utilities = append(in.Profile.Utilities, types.Utility(u))
	}
	for _, fee := range c.Fee {
		in.Profile.Fees = append(in.Profile.Fees, types.CenterFee(fee))
	}
	for _, img := range c.FeeImg {
		in.Profile.FeeImages = append(in.Profile.FeeImages, types.CenterFeeImage(img))
	}
	for _, h := range c.Holds {
		in.Holds = append(in.Holds, services.HoldInput(h))
	}
	for _, w := range c.Walls {
		in.Walls = append(in.Walls, services.WallInput(w))
	}
	return in
}
