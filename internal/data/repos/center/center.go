package center

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type CenterRepo interface {
	// Load returns the center with its owner, holds and walls, or nil when absent.
	Load(dbc dbctx.Context, centerID string) (*center.Center, error)
	Create(dbc dbctx.Context, c *center.Center) (*center.Center, error)
	// Save overwrites the scalar and serialized columns of an existing center.
	Save(dbc dbctx.Context, c *center.Center) error
	UpdateFees(dbc dbctx.Context, centerID string, fees []center.CenterFee, images []center.CenterFeeImage) error
	Delete(dbc dbctx.Context, centerID string) error
	FindApprovedByName(dbc dbctx.Context, name string, limit int) ([]*center.Center, error)
	ListByUser(dbc dbctx.Context, userID string, params pagination.Params) (pagination.Page[*center.Center], error)
}

type centerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCenterRepo(db *gorm.DB, baseLog *logger.Logger) CenterRepo {
	return &centerRepo{db: db, log: baseLog.With("repo", "CenterRepo")}
}

func (r *centerRepo) Load(dbc dbctx.Context, centerID string) (*center.Center, error) {
	if strings.TrimSpace(centerID) == "" {
		return nil, nil
	}
	var row Record
	err := dbc.DB(r.db).
		Preload("User").
		Preload("Holds", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC, id ASC") }).
		Preload("Walls", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC, id ASC") }).
		Where("id = ?", centerID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierr.FromDB("center.load", err)
	}
	return row.ToDomain()
}

func (r *centerRepo) Create(dbc dbctx.Context, c *center.Center) (*center.Center, error) {
	if c == nil {
		return nil, nil
	}
	row, err := FromDomain(c)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if err := dbc.DB(r.db).Omit("User", "Holds", "Walls").Create(row).Error; err != nil {
		return nil, apierr.FromDB("center.create", err)
	}
	c.ID = row.ID
	c.CreatedAt = row.CreatedAt
	c.UpdatedAt = row.UpdatedAt
	return c, nil
}

func (r *centerRepo) Save(dbc dbctx.Context, c *center.Center) error {
	if c == nil || c.ID == "" {
		return nil
	}
	row, err := FromDomain(c)
	if err != nil {
		return apierr.Internal(err)
	}
	updates := map[string]any{
		"name":           row.Name,
		"profile_img":    row.ProfileImage,
		"address":        row.Address,
		"detail_address": row.DetailAddress,
		"tel":            row.Tel,
		"web_url":        row.WebURL,
		"instagram_name": row.InstagramName,
		"youtube_url":    row.YoutubeURL,
		"approved":       row.Approved,
	}
	for k, v := range row.serializedColumns() {
		updates[k] = v
	}
	res := dbc.DB(r.db).Model(&Record{}).Where("id = ?", c.ID).Updates(updates)
	if res.Error != nil {
		return apierr.FromDB("center.save", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "center does not exist")
	}
	return nil
}

func (r *centerRepo) UpdateFees(dbc dbctx.Context, centerID string, fees []center.CenterFee, images []center.CenterFeeImage) error {
	feeRaw, err := encodeColumn(colFee, fees)
	if err != nil {
		return apierr.Internal(err)
	}
	imgRaw, err := encodeColumn(colFeeImage, images)
	if err != nil {
		return apierr.Internal(err)
	}
	res := dbc.DB(r.db).Model(&Record{}).Where("id = ?", centerID).Updates(map[string]any{
		colFee:      feeRaw,
		colFeeImage: imgRaw,
	})
	if res.Error != nil {
		return apierr.FromDB("center.update_fees", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "center does not exist")
	}
	return nil
}

func (r *centerRepo) Delete(dbc dbctx.Context, centerID string) error {
	if err := dbc.DB(r.db).Where("id = ?", centerID).Delete(&Record{}).Error; err != nil {
		return apierr.FromDB("center.delete", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *centerRepo) FindApprovedByName(dbc dbctx.Context, name string, limit int) ([]*center.Center, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return []*center.Center{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	var rows []Record
	err := dbc.DB(r.db).
		Select("id", "name", "profile_img", "address", "detail_address", "approved").
		Where("approved = ?", true).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(name)+"%").
		Order("LOWER(name) ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, apierr.FromDB("center.find_by_name", err)
	}
	return toDomainList(rows)
}

func (r *centerRepo) ListByUser(dbc dbctx.Context, userID string, params pagination.Params) (pagination.Page[*center.Center], error) {
	out := pagination.Page[*center.Center]{Items: []*center.Center{}, Page: params.Page, Size: params.Size}
	q := dbc.DB(r.db).Model(&Record{}).Where("user_id = ?", userID)
	if err := q.Count(&out.Total).Error; err != nil {
		return out, apierr.FromDB("center.list_by_user.count", err)
	}
	if out.Total == 0 {
		return out, nil
	}
	var rows []Record
	err := dbc.DB(r.db).
		Select("id", "user_id", "name", "profile_img", "address", "detail_address", "approved", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&rows).Error
	if err != nil {
		return out, apierr.FromDB("center.list_by_user", err)
	}
	items, err := toDomainList(rows)
	if err != nil {
		return out, err
	}
	out.Items = items
	return out, nil
}

func toDomainList(rows []Record) ([]*center.Center, error) {
	out := make([]*center.Center, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
