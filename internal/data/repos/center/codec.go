package center

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
)

// Stored records use pointer fields so an absent key is distinguishable from
// a zero value. Writes go through the domain types, whose json tags already
// list fields in declared order.

type operatingTimeRecord struct {
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type urlRecord struct {
	URL *string `json:"url"`
}

type utilityRecord struct {
	Name *string `json:"name"`
}

type feeRecord struct {
	Name  *string `json:"name"`
	Price *int    `json:"price"`
	Count *int    `json:"count"`
}

// decodeColumn parses one serialized column into value objects. A NULL or
// blank column reads as an empty collection.
func decodeColumn[R any, V any](column, raw string, build func(R) (V, []string)) ([]V, error) {
	if strings.TrimSpace(raw) == "" {
		return []V{}, nil
	}
	var records []R
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, apierr.DataCorruption(fmt.Sprintf("center.%s: invalid array data", column), err)
	}
	if records == nil {
		return nil, apierr.DataCorruption(fmt.Sprintf("center.%s: expected array, got null", column), nil)
	}
	out := make([]V, 0, len(records))
	for i, rec := range records {
		v, missing := build(rec)
		if len(missing) > 0 {
			return nil, apierr.DataCorruption(
				fmt.Sprintf("center.%s[%d]: missing field %s", column, i, strings.Join(missing, ", ")),
				nil,
			)
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeColumn[V any](column string, values []V) (string, error) {
	if values == nil {
		values = []V{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("center.%s: encode: %w", column, err)
	}
	return string(raw), nil
}

func requireString(missing []string, name string, v *string) ([]string, string) {
	if v == nil {
		return append(missing, name), ""
	}
	return missing, *v
}

func requireInt(missing []string, name string, v *int) ([]string, int) {
	if v == nil {
		return append(missing, name), 0
	}
	return missing, *v
}

func decodeOperatingTimes(raw string) ([]center.OperatingTime, error) {
	return decodeColumn(colOperatingTime, raw, func(r operatingTimeRecord) (center.OperatingTime, []string) {
		var missing []string
		var v center.OperatingTime
		missing, v.DayOfWeek = requireString(missing, "day_of_week", r.DayOfWeek)
		missing, v.StartTime = requireString(missing, "start_time", r.StartTime)
		missing, v.EndTime = requireString(missing, "end_time", r.EndTime)
		return v, missing
	})
}

func decodeCenterImages(raw string) ([]center.CenterImage, error) {
	return decodeColumn(colCenterImage, raw, func(r urlRecord) (center.CenterImage, []string) {
		missing, url := requireString(nil, "url", r.URL)
		return center.CenterImage{URL: url}, missing
	})
}

func decodeUtilities(raw string) ([]center.Utility, error) {
	return decodeColumn(colUtility, raw, func(r utilityRecord) (center.Utility, []string) {
		missing, name := requireString(nil, "name", r.Name)
		return center.Utility{Name: name}, missing
	})
}

func decodeFees(raw string) ([]center.CenterFee, error) {
	return decodeColumn(colFee, raw, func(r feeRecord) (center.CenterFee, []string) {
		var missing []string
		var v center.CenterFee
		missing, v.Name = requireString(missing, "name", r.Name)
		missing, v.Price = requireInt(missing, "price", r.Price)
		missing, v.Count = requireInt(missing, "count", r.Count)
		return v, missing
	})
}

func decodeFeeImages(raw string) ([]center.CenterFeeImage, error) {
	return decodeColumn(colFeeImage, raw, func(r urlRecord) (center.CenterFeeImage, []string) {
		missing, url := requireString(nil, "url", r.URL)
		return center.CenterFeeImage{URL: url}, missing
	})
}
