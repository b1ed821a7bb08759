package domain

import "time"

const (
	HealthStatusHealthy = "healthy"
	HealthStatusWarning = "warning"
)

// ChannelReport é a visão de um canal na última coleta do dia
type ChannelReport struct {
	Channel    string           `json:"channel"`
	Status     CollectionStatus `json:"status"`
	Data       ChannelSummary   `json:"data"`
	Date       string           `json:"date"`
	LastUpdate *time.Time       `json:"last_update,omitempty"`
}

// HealthReport resume o estado do serviço
type HealthReport struct {
	Status           string     `json:"status"`
	ProductID        string     `json:"product_id"`
	HasTodayData     bool       `json:"has_today_data"`
	CollectionsToday int        `json:"collections_today"`
	LastCollection   *time.Time `json:"last_collection"`
	SystemTime       time.Time  `json:"system_time"`
	Database         string     `json:"database"`
}
