package center

import (
	"time"

	"github.com/claon/claon-admin/internal/domain/user"
)

// Center is the gym aggregate. The five value-object collections are plain
// slices here; how they are stored is the repository's concern.
type Center struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	ProfileImage  string `json:"profile_image"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
	Tel           string `json:"tel"`
	WebURL        string `json:"web_url"`
	InstagramName string `json:"instagram_name"`
	YoutubeURL    string `json:"youtube_url"`
	Approved      bool   `json:"approved"`

	OperatingTimes []OperatingTime  `json:"operating_time"`
	Images         []CenterImage    `json:"center_img"`
	Utilities      []Utility        `json:"utility"`
	Fees           []CenterFee      `json:"fee"`
	FeeImages      []CenterFeeImage `json:"fee_img"`

	Holds []CenterHold `json:"holds"`
	Walls []CenterWall `json:"walls"`

	User *user.User `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Center) IsOwnedBy(userID string) bool {
	return c != nil && userID != "" && c.UserID == userID
}

// OwnerIsCenterAdmin reports whether the owning user (as loaded) holds the
// center-administrator role.
func (c *Center) OwnerIsCenterAdmin() bool {
	return c != nil && c.User.IsCenterAdmin()
}

func (c *Center) HasHold(holdID string) bool {
	if c == nil {
		return false
	}
	for _, h := range c.Holds {
		if h.ID == holdID {
			return true
		}
	}
	return false
}

func (c *Center) HoldIDs() []string {
	ids := make([]string, 0, len(c.Holds))
	for _, h := range c.Holds {
		ids = append(ids, h.ID)
	}
	return ids
}

// ReplaceFees swaps both fee collections wholesale.
func (c *Center) ReplaceFees(fees []CenterFee, images []CenterFeeImage) {
	c.Fees = append([]CenterFee(nil), fees...)
	c.FeeImages = append([]CenterFeeImage(nil), images...)
}

// ReplaceProfile swaps the profile scalars and the remaining value-object
// collections wholesale. Approval state and ownership are untouched.
func (c *Center) ReplaceProfile(p Profile) {
	c.Name = p.Name
	c.ProfileImage = p.ProfileImage
	c.Address = p.Address
	c.DetailAddress = p.DetailAddress
	c.Tel = p.Tel
	c.WebURL = p.WebURL
	c.InstagramName = p.InstagramName
	c.YoutubeURL = p.YoutubeURL
	c.OperatingTimes = append([]OperatingTime(nil), p.OperatingTimes...)
	c.Images = append([]CenterImage(nil), p.Images...)
	c.Utilities = append([]Utility(nil), p.Utilities...)
	c.ReplaceFees(p.Fees, p.FeeImages)
}

// Profile is the replaceable part of a center.
type Profile struct {
	Name           string
	ProfileImage   string
	Address        string
	DetailAddress  string
	Tel            string
	WebURL         string
	InstagramName  string
	YoutubeURL     string
	OperatingTimes []OperatingTime
	Images         []CenterImage
	Utilities      []Utility
	Fees           []CenterFee
	FeeImages      []CenterFeeImage
}
