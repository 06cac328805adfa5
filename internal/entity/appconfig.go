package entity

// AppConfig carries the two selector lists the dashboard renders. Fetched
// once per session from the public config endpoint.
type AppConfig struct {
	DeliveryPartners []string `json:"delivery_partners"`
	QuickStatuses    []string `json:"quick_statuses"`
}
