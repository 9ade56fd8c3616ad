package monitor

import (
	"fmt"

	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

// Evaluate maps one sample to at most one alert per vital, ordered heart rate,
// SpO₂, temperature. The critical threshold is checked before the high/low one
// so a vital never yields both. Timestamp, ID and Seq are left for the caller.
func Evaluate(rules models.RuleSet, sample models.Sample, patientID string) []models.Alert {
	var alerts []models.Alert

	add := func(priority models.Priority, vital models.VitalType, message string) {
		alerts = append(alerts, models.Alert{
			PatientID: patientID,
			Priority:  priority,
			Vital:     vital,
			Message:   message,
		})
	}

	switch hr := sample.HeartRate; {
	case hr >= rules.HRCritical:
		add(models.PriorityCritical, models.VitalHeartRate,
			fmt.Sprintf("Critical HR %.1f bpm (≥ %g)", hr, rules.HRCritical))
	case hr >= rules.HRHigh:
		add(models.PriorityWarning, models.VitalHeartRate,
			fmt.Sprintf("High HR %.1f bpm (≥ %g)", hr, rules.HRHigh))
	}

	switch spo2 := sample.SpO2; {
	case spo2 <= rules.SpO2Critical:
		add(models.PriorityCritical, models.VitalSpO2,
			fmt.Sprintf("Critical SpO₂ %.1f%% (≤ %g%%)", spo2, rules.SpO2Critical))
	case spo2 <= rules.SpO2Low:
		add(models.PriorityWarning, models.VitalSpO2,
			fmt.Sprintf("Low SpO₂ %.1f%% (≤ %g%%)", spo2, rules.SpO2Low))
	}

	switch temp := sample.Temp; {
	case temp >= rules.TempCritical:
		add(models.PriorityCritical, models.VitalTemp,
			fmt.Sprintf("Critical Temp %.1f°F (≥ %g°F)", temp, rules.TempCritical))
	case temp >= rules.TempHigh:
		add(models.PriorityWarning, models.VitalTemp,
			fmt.Sprintf("High Temp %.1f°F (≥ %g°F)", temp, rules.TempHigh))
	}

	return alerts
}
