package center

import (
	"reflect"
	"testing"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
)

func sampleCenter() *center.Center {
	return &center.Center{
		ID:     "c1",
		UserID: "u1",
		Name:   "claon gym",
		OperatingTimes: []center.OperatingTime{
			{DayOfWeek: "월", StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: "화", StartTime: "10:00", EndTime: "22:00"},
		},
		Images:    []center.CenterImage{{URL: "https://cdn/a.png"}, {URL: "https://cdn/b.png"}},
		Utilities: []center.Utility{{Name: "parking"}, {Name: "shower"}},
		Fees: []center.CenterFee{
			{Name: "day pass", Price: 15000, Count: 1},
			{Name: "10 visits", Price: 120000, Count: 10},
		},
		FeeImages: []center.CenterFeeImage{{URL: "https://cdn/fee.png"}},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	in := sampleCenter()
	row, err := FromDomain(in)
	if err != nil {
		t.Fatalf("FromDomain: %v", err)
	}
	out, err := row.ToDomain()
	if err != nil {
		t.Fatalf("ToDomain: %v", err)
	}
	if !reflect.DeepEqual(out.OperatingTimes, in.OperatingTimes) {
		t.Fatalf("operating times: want=%+v got=%+v", in.OperatingTimes, out.OperatingTimes)
	}
	if !reflect.DeepEqual(out.Images, in.Images) {
		t.Fatalf("images: want=%+v got=%+v", in.Images, out.Images)
	}
	if !reflect.DeepEqual(out.Utilities, in.Utilities) {
		t.Fatalf("utilities: want=%+v got=%+v", in.Utilities, out.Utilities)
	}
	if !reflect.DeepEqual(out.Fees, in.Fees) {
		t.Fatalf("fees: want=%+v got=%+v", in.Fees, out.Fees)
	}
	if !reflect.DeepEqual(out.FeeImages, in.FeeImages) {
		t.Fatalf("fee images: want=%+v got=%+v", in.FeeImages, out.FeeImages)
	}
}

func TestEncodeColumnShape(t *testing.T) {
	row, err := FromDomain(&center.Center{
		OperatingTimes: []center.OperatingTime{{DayOfWeek: "월", StartTime: "09:00", EndTime: "18:00"}},
		Fees:           []center.CenterFee{{Name: "day pass", Price: 15000, Count: 1}},
	})
	if err != nil {
		t.Fatalf("FromDomain: %v", err)
	}
	if want := `[{"day_of_week":"월","start_time":"09:00","end_time":"18:00"}]`; row.OperatingTime != want {
		t.Fatalf("operating time: want=%s got=%s", want, row.OperatingTime)
	}
	if want := `[{"name":"day pass","price":15000,"count":1}]`; row.Fee != want {
		t.Fatalf("fee: want=%s got=%s", want, row.Fee)
	}
	if row.CenterImage != "[]" || row.Utility != "[]" || row.FeeImage != "[]" {
		t.Fatalf("empty collections must encode as []: %q %q %q", row.CenterImage, row.Utility, row.FeeImage)
	}
}

// Rows written by the previous backend use spaced separators and escaped
// unicode; they must still decode.
func TestDecodeLegacyText(t *testing.T) {
	row := &Record{
		ID:            "c1",
		OperatingTime: `[{"day_of_week": "\uc6d4", "start_time": "09:00", "end_time": "18:00"}]`,
		Fee:           `[{"name": "day pass", "price": 15000, "count": 1}]`,
		CenterImage:   `[{"url": "https://test.image.png"}]`,
		Utility:       `[{"name": "test_utility"}]`,
		FeeImage:      `[{"url": "https://test.fee.png"}]`,
	}
	c, err := row.ToDomain()
	if err != nil {
		t.Fatalf("ToDomain: %v", err)
	}
	if len(c.OperatingTimes) != 1 || c.OperatingTimes[0].DayOfWeek != "월" {
		t.Fatalf("operating time: got=%+v", c.OperatingTimes)
	}
	if len(c.Fees) != 1 || c.Fees[0].Price != 15000 {
		t.Fatalf("fee: got=%+v", c.Fees)
	}
	if c.Images[0].URL != "https://test.image.png" || c.Utilities[0].Name != "test_utility" || c.FeeImages[0].URL != "https://test.fee.png" {
		t.Fatalf("unexpected decode: %+v", c)
	}
}

func TestDecodeCorruption(t *testing.T) {
	cases := []struct {
		name string
		row  Record
	}{
		{"not json", Record{Fee: `[{"name":`}},
		{"object instead of array", Record{Utility: `{"name":"x"}`}},
		{"null array", Record{CenterImage: `null`}},
		{"missing price", Record{Fee: `[{"name":"day pass","count":1}]`}},
		{"missing end_time", Record{OperatingTime: `[{"day_of_week":"월","start_time":"09:00"}]`}},
		{"wrong type", Record{Fee: `[{"name":"day pass","price":"15000","count":1}]`}},
		{"null element", Record{FeeImage: `[null]`}},
		{"scalar element", Record{Utility: `["parking"]`}},
	}
	for _, tc := range cases {
		_, err := tc.row.ToDomain()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !apierr.IsKind(err, apierr.KindDataCorruption) {
			t.Fatalf("%s: want kind=%s got=%s (%v)", tc.name, apierr.KindDataCorruption, apierr.KindOf(err), err)
		}
	}
}

func TestDecodeBlankColumnIsEmpty(t *testing.T) {
	c, err := (&Record{ID: "c1"}).ToDomain()
	if err != nil {
		t.Fatalf("ToDomain: %v", err)
	}
	if c.OperatingTimes == nil || len(c.OperatingTimes) != 0 {
		t.Fatalf("want empty non-nil slice got=%#v", c.OperatingTimes)
	}
	if len(c.Holds) != 0 || c.Holds == nil {
		t.Fatalf("want empty holds got=%#v", c.Holds)
	}
}
