package models

import (
	"github.com/maksimkurb/zte-goform/src/internal/goform"
	"github.com/maksimkurb/zte-goform/src/internal/utils"
)

// DataUsageKeys are queried together in this order.
var DataUsageKeys = []string{
	"datausage_remainamount",
	"datausage_remaindays",
	"datausage_remainrate",
	"datausage_lowbalance",
	"datausage_preactive",
	"datausage_syncresult",
	"datausage_prepaid",
	"datausage_rechargesiteurl",
	"datausage_plantype",
	"datausage_allotedamount",
	"datausage_usedamount",
	"datausage_usedrate",
}

// DataUsage is the plan usage reported by the device. All values are public.
type DataUsage struct {
	UsedBytes        int64   `json:"used_bytes"`
	RemainingBytes   int64   `json:"remaining_bytes"`
	TotalBytes       int64   `json:"total_bytes"`
	UsedPercent      float64 `json:"used_percent"`
	RemainingPercent float64 `json:"remaining_percent"`
	RemainingDays    int64   `json:"remaining_days"`
	UsageWarning     bool    `json:"usage_warning"`

	// Human readable sizes, e.g. "146.5 GB". Empty when the byte count is zero
	// or unknown.
	UsedData      string `json:"used_data"`
	RemainingData string `json:"remaining_data"`
	TotalData     string `json:"total_data"`

	PlanType string `json:"plan_type,omitempty"`
}

// FetchDataUsage queries the usage keys through s.
func FetchDataUsage(s goform.Session) (*DataUsage, error) {
	values, err := s.Query(DataUsageKeys)
	if err != nil {
		return nil, err
	}
	return ParseDataUsage(values), nil
}

// ParseDataUsage maps a usage response. Missing or malformed values stay zero.
func ParseDataUsage(v goform.Values) *DataUsage {
	u := &DataUsage{PlanType: v.String("datausage_plantype")}

	u.UsedBytes, _ = v.Int("datausage_usedamount")
	u.RemainingBytes, _ = v.Int("datausage_remainamount")
	u.TotalBytes, _ = v.Int("datausage_allotedamount")
	u.UsedPercent, _ = v.Float("datausage_usedrate")
	u.RemainingPercent, _ = v.Float("datausage_remainrate")
	u.RemainingDays, _ = v.Int("datausage_remaindays")
	u.UsageWarning, _ = v.Bool("datausage_lowbalance")

	u.UsedData = humanSize(u.UsedBytes)
	u.RemainingData = humanSize(u.RemainingBytes)
	u.TotalData = humanSize(u.TotalBytes)
	return u
}

func humanSize(bytes int64) string {
	if bytes == 0 {
		return ""
	}
	return utils.ConvertSize(bytes)
}

// TemplateValues exposes the usage as strings for output templates.
func (u *DataUsage) TemplateValues() map[string]any {
	return map[string]any{
		"used_bytes":        formatInt(u.UsedBytes),
		"remaining_bytes":   formatInt(u.RemainingBytes),
		"total_bytes":       formatInt(u.TotalBytes),
		"used_percent":      formatFloat(u.UsedPercent),
		"remaining_percent": formatFloat(u.RemainingPercent),
		"remaining_days":    formatInt(u.RemainingDays),
		"usage_warning":     formatBool(u.UsageWarning),
		"used_data":         u.UsedData,
		"remaining_data":    u.RemainingData,
		"total_data":        u.TotalData,
		"plan_type":         u.PlanType,
	}
}
