package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
	"liyu1981.xyz/vitals-monitor-service/pkg/monitor"
)

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) StartMonitor(c *gin.Context) {
	changed := rs.Monitor.Start()
	c.JSON(http.StatusOK, gin.H{"running": true, "changed": changed})
}

func (rs *RestfulServer) StopMonitor(c *gin.Context) {
	changed := rs.Monitor.Stop()
	c.JSON(http.StatusOK, gin.H{"running": false, "changed": changed})
}

func (rs *RestfulServer) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Monitor.Snapshot())
}

func (rs *RestfulServer) GetPatients(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Monitor.Patients())
}

func (rs *RestfulServer) GetPatientVitals(c *gin.Context) {
	view, err := rs.Monitor.PatientVitals(c.Param("patient_id"))
	if errors.Is(err, monitor.ErrUnknownPatient) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (rs *RestfulServer) InjectEvent(c *gin.Context) {
	patientID := c.Param("patient_id")

	if !rs.CheckPatientLimiter(patientID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	until, err := rs.Monitor.Event.InjectEvent(patientID)
	switch {
	case errors.Is(err, monitor.ErrUnknownPatient):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patientId": patientID, "eventUntil": until})
}

type RulesRequest struct {
	HrHigh   float64 `json:"hrHigh"`
	HrCrit   float64 `json:"hrCrit"`
	Spo2Low  float64 `json:"spo2Low"`
	Spo2Crit float64 `json:"spo2Crit"`
	TempHigh float64 `json:"tempHigh"`
	TempCrit float64 `json:"tempCrit"`
}

var rulesRequestSchema = z.Struct(z.Shape{
	"HrHigh":   z.Float64().Required(),
	"HrCrit":   z.Float64().Required(),
	"Spo2Low":  z.Float64().Required(),
	"Spo2Crit": z.Float64().Required(),
	"TempHigh": z.Float64().Required(),
	"TempCrit": z.Float64().Required(),
})

func (rs *RestfulServer) GetRules(c *gin.Context) {
	rules, depth := rs.Monitor.Rules.GetRules()
	c.JSON(http.StatusOK, gin.H{"rules": rules, "undoDepth": depth})
}

func (rs *RestfulServer) PutRules(c *gin.Context) {
	var req RulesRequest
	if err := rulesRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	next := models.RuleSet{
		HRHigh:       req.HrHigh,
		HRCritical:   req.HrCrit,
		SpO2Low:      req.Spo2Low,
		SpO2Critical: req.Spo2Crit,
		TempHigh:     req.TempHigh,
		TempCritical: req.TempCrit,
	}
	if err := rs.Monitor.Rules.UpdateRules(next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": next})
}

type RuleValueRequest struct {
	Value float64 `json:"value"`
}

var ruleValueRequestSchema = z.Struct(z.Shape{
	"Value": z.Float64().Required(),
})

func (rs *RestfulServer) PatchRule(c *gin.Context) {
	var req RuleValueRequest
	if err := ruleValueRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Monitor.Rules.SetRule(c.Param("key"), req.Value)
	switch {
	case errors.Is(err, monitor.ErrUnknownRule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rules, depth := rs.Monitor.Rules.GetRules()
	c.JSON(http.StatusOK, gin.H{"rules": rules, "undoDepth": depth})
}

func (rs *RestfulServer) UndoRules(c *gin.Context) {
	rules, err := rs.Monitor.Rules.UndoRules()
	if errors.Is(err, monitor.ErrNothingToUndo) {
		c.JSON(http.StatusConflict, gin.H{"notice": err.Error(), "rules": rules})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (rs *RestfulServer) SaveRules(c *gin.Context) {
	if err := rs.Monitor.Rules.SaveRules(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Monitor.Alert.GetTopAlerts())
}

func (rs *RestfulServer) GetSessionMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, rs.Monitor.Alert.GetMetrics())
}

func (rs *RestfulServer) writeExport(c *gin.Context, export *monitor.Export, err error) {
	if errors.Is(err, monitor.ErrNothingToExport) {
		c.JSON(http.StatusNotFound, gin.H{"notice": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Data)
}

func (rs *RestfulServer) ExportCSV(c *gin.Context) {
	export, err := rs.Monitor.Export.ExportCSV()
	rs.writeExport(c, export, err)
}

func (rs *RestfulServer) ExportXLSX(c *gin.Context) {
	export, err := rs.Monitor.Export.ExportXLSX()
	rs.writeExport(c, export, err)
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

var themeRequestSchema = z.Struct(z.Shape{
	"Theme": z.String().Required(),
})

func (rs *RestfulServer) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": rs.Monitor.GetTheme(c.Request.Context())})
}

func (rs *RestfulServer) PutTheme(c *gin.Context) {
	var req ThemeRequest
	if err := themeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Monitor.SetTheme(c.Request.Context(), models.Theme(req.Theme))
	switch {
	case errors.Is(err, monitor.ErrInvalidTheme):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	applied := rs.SetLimiter(c.Param("patient_id"), req.Rate, req.Burst)
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// Stream pushes one "tick" server-sent event per published snapshot until the
// client disconnects.
func (rs *RestfulServer) Stream(c *gin.Context) {
	snapshots, unsubscribe := rs.Monitor.Broadcaster().Subscribe()
	defer unsubscribe()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case snap := <-snapshots:
			c.SSEvent("tick", snap)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
