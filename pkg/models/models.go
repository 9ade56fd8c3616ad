package models

import "time"

type VitalType string

const (
	VitalHeartRate VitalType = "hr"
	VitalSpO2      VitalType = "spo2"
	VitalTemp      VitalType = "temp"
)

type Priority int

const (
	PriorityCritical Priority = 1
	PriorityWarning  Priority = 2
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Vitals struct {
	HeartRate float64 `json:"hr"`
	SpO2      float64 `json:"spo2"`
	Temp      float64 `json:"temp"`
}

type Sample struct {
	Vitals
	InEvent bool `json:"inEvent"`
}

// RuleSet is treated as an immutable snapshot: edits produce a new value.
type RuleSet struct {
	HRHigh       float64 `json:"hrHigh"`
	HRCritical   float64 `json:"hrCrit"`
	SpO2Low      float64 `json:"spo2Low"`
	SpO2Critical float64 `json:"spo2Crit"`
	TempHigh     float64 `json:"tempHigh"`
	TempCritical float64 `json:"tempCrit"`
}

type Alert struct {
	ID           string    `json:"id"`
	Seq          uint64    `json:"seq"`
	PatientID    string    `json:"patientId"`
	Priority     Priority  `json:"priority"`
	Vital        VitalType `json:"vital"`
	Message      string    `json:"message"`
	Timestamp    int64     `json:"ts"`
	TruePositive bool      `json:"truePositive"`
}

type RunLogEntry struct {
	Ts         int64   `json:"ts"`
	PatientID  string  `json:"patientId"`
	HeartRate  float64 `json:"hr"`
	SpO2       float64 `json:"spo2"`
	Temp       float64 `json:"temp"`
	InEvent    bool    `json:"inEvent"`
	AlertCount int     `json:"alertCount"`
}

type Metrics struct {
	Ticks          uint64 `json:"ticks"`
	TotalAlerts    uint64 `json:"totalAlerts"`
	TruePositives  uint64 `json:"truePositives"`
	FalsePositives uint64 `json:"falsePositives"`
}

// Setting is one row of the key-value settings table.
type Setting struct {
	Key       string `gorm:"primaryKey;column:setting_key"`
	Value     string
	UpdatedAt time.Time
}
