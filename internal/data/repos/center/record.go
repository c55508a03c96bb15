package center

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/domain/user"
)

const (
	colCenterImage   = "_center_img"
	colOperatingTime = "_operating_time"
	colUtility       = "_utility"
	colFee           = "_fee"
	colFeeImage      = "_fee_img"
)

// Record is the tb_center row. The five value-object collections live in
// TEXT columns holding JSON arrays of flat objects.
type Record struct {
	ID            string `gorm:"type:varchar(255);primaryKey"`
	UserID        string `gorm:"type:varchar(255);index;column:user_id"`
	Name          string `gorm:"type:varchar(30);not null;column:name"`
	ProfileImage  string `gorm:"type:text;not null;column:profile_img"`
	Address       string `gorm:"type:varchar(255);not null;column:address"`
	DetailAddress string `gorm:"type:varchar(255);column:detail_address"`
	Tel           string `gorm:"type:varchar(255);not null;column:tel"`
	WebURL        string `gorm:"type:varchar(500);column:web_url"`
	InstagramName string `gorm:"type:varchar(20);column:instagram_name"`
	YoutubeURL    string `gorm:"type:varchar(500);column:youtube_url"`
	Approved      bool   `gorm:"not null;default:false;column:approved"`

	CenterImage   string `gorm:"type:text;column:_center_img"`
	OperatingTime string `gorm:"type:text;column:_operating_time"`
	Utility       string `gorm:"type:text;column:_utility"`
	Fee           string `gorm:"type:text;column:_fee"`
	FeeImage      string `gorm:"type:text;column:_fee_img"`

	User  *user.User          `gorm:"foreignKey:UserID"`
	Holds []center.CenterHold `gorm:"foreignKey:CenterID"`
	Walls []center.CenterWall `gorm:"foreignKey:CenterID"`

	CreatedAt time.Time `gorm:"not null;default:current_timestamp"`
	UpdatedAt time.Time `gorm:"not null;default:current_timestamp"`
}

func (Record) TableName() string { return "tb_center" }

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ToDomain decodes the row into the aggregate. Any malformed collection is
// reported as data corruption.
func (r *Record) ToDomain() (*center.Center, error) {
	c := &center.Center{
		ID:            r.ID,
		UserID:        r.UserID,
		Name:          r.Name,
		ProfileImage:  r.ProfileImage,
		Address:       r.Address,
		DetailAddress: r.DetailAddress,
		Tel:           r.Tel,
		WebURL:        r.WebURL,
		InstagramName: r.InstagramName,
		YoutubeURL:    r.YoutubeURL,
		Approved:      r.Approved,
		Holds:         r.Holds,
		Walls:         r.Walls,
		User:          r.User,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	var err error
	if c.OperatingTimes, err = decodeOperatingTimes(r.OperatingTime); err != nil {
		return nil, err
	}
	if c.Images, err = decodeCenterImages(r.CenterImage); err != nil {
		return nil, err
	}
	if c.Utilities, err = decodeUtilities(r.Utility); err != nil {
		return nil, err
	}
	if c.Fees, err = decodeFees(r.Fee); err != nil {
		return nil, err
	}
	if c.FeeImages, err = decodeFeeImages(r.FeeImage); err != nil {
		return nil, err
	}
	if c.Holds == nil {
		c.Holds = []center.CenterHold{}
	}
	if c.Walls == nil {
		c.Walls = []center.CenterWall{}
	}
	return c, nil
}

// FromDomain encodes the aggregate's scalar and serialized columns. Child
// entities are not copied; they are written through their own repos.
func FromDomain(c *center.Center) (*Record, error) {
	r := &Record{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		ProfileImage:  c.ProfileImage,
		Address:       c.Address,
		DetailAddress: c.DetailAddress,
		Tel:           c.Tel,
		WebURL:        c.WebURL,
		InstagramName: c.InstagramName,
		YoutubeURL:    c.YoutubeURL,
		Approved:      c.Approved,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	var err error
	if r.CenterImage, err = encodeColumn(colCenterImage, c.Images); err != nil {
		return nil, err
	}
	if r.OperatingTime, err = encodeColumn(colOperatingTime, c.OperatingTimes); err != nil {
		return nil, err
	}
	if r.Utility, err = encodeColumn(colUtility, c.Utilities); err != nil {
		return nil, err
	}
	if r.Fee, err = encodeColumn(colFee, c.Fees); err != nil {
		return nil, err
	}
	if r.FeeImage, err = encodeColumn(colFeeImage, c.FeeImages); err != nil {
		return nil, err
	}
	return r, nil
}

// serializedColumns returns the five serialized columns keyed by column name.
func (r *Record) serializedColumns() map[string]any {
	return map[string]any{
		colCenterImage:   r.CenterImage,
		colOperatingTime: r.OperatingTime,
		colUtility:       r.Utility,
		colFee:           r.Fee,
		colFeeImage:      r.FeeImage,
	}
}
