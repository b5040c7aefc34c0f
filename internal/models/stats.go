package models

import "github.com/shopspring/decimal"

// ComplianceStats is the aggregate snapshot served by the stats endpoint.
type ComplianceStats struct {
	TotalProperties int `json:"total_properties"`
	Registered      int `json:"registered"`
	Unregistered    int `json:"unregistered"`

	Scenario1 int `json:"scenario_1"`
	Scenario2 int `json:"scenario_2"`
	Scenario3 int `json:"scenario_3"`
	Scenario4 int `json:"scenario_4"`

	TotalPayments decimal.Decimal `json:"total_payments"`
}
