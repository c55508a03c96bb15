package center

type OperatingTime struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CenterImage struct {
	URL string `json:"url"`
}

type Utility struct {
	Name string `json:"name"`
}

type CenterFee struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Count int    `json:"count"`
}

type CenterFeeImage struct {
	URL string `json:"url"`
}
