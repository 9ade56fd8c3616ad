package monitor

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

var ErrNothingToExport = errors.New("nothing to export")

var ExportHeader = []string{"ts", "time", "patientId", "hr", "spo2", "temp", "inEvent", "alertCount"}

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxSheetName   = "Run Log"
)

type Export struct {
	Filename    string
	ContentType string
	Rows        int
	Data        []byte
}

func ExportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("vitals-run-%s.%s", now.Format("20060102-150405"), ext)
}

func formatClock(ts int64) string {
	return time.UnixMilli(ts).Format(time.TimeOnly)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func exportRecord(e models.RunLogEntry) []string {
	return []string{
		strconv.FormatInt(e.Ts, 10),
		formatClock(e.Ts),
		e.PatientID,
		strconv.FormatFloat(e.HeartRate, 'f', 2, 64),
		strconv.FormatFloat(e.SpO2, 'f', 2, 64),
		strconv.FormatFloat(e.Temp, 'f', 2, 64),
		boolDigit(e.InEvent),
		strconv.Itoa(e.AlertCount),
	}
}

func WriteCSV(w io.Writer, entries []models.RunLogEntry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(exportRecord(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func BuildXLSX(entries []models.RunLogEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := common.Mapper(ExportHeader, func(h string) any { return h })
	if err := f.SetSheetRow(xlsxSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			e.Ts,
			formatClock(e.Ts),
			e.PatientID,
			e.HeartRate,
			e.SpO2,
			e.Temp,
			boolDigit(e.InEvent),
			e.AlertCount,
		}
		if err := f.SetSheetRow(xlsxSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (m *Monitor) runLogEntries() []models.RunLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runLog.Entries()
}

func (m *Monitor) exportLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameMonitor,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryExport),
	)
}

func (m *Monitor) exportCSV() (*Export, error) {
	entries := m.runLogEntries()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		if errors.Is(err, ErrNothingToExport) {
			m.exportLogger().Info("CSV export skipped, run log is empty")
		}
		return nil, err
	}

	export := &Export{
		Filename:    ExportFilename(m.clock(), "csv"),
		ContentType: ContentTypeCSV,
		Rows:        len(entries),
		Data:        buf.Bytes(),
	}
	m.exportLogger().Info("CSV exported", zap.String("filename", export.Filename), zap.Int("rows", export.Rows))
	return export, nil
}

func (m *Monitor) exportXLSX() (*Export, error) {
	entries := m.runLogEntries()

	data, err := BuildXLSX(entries)
	if err != nil {
		if errors.Is(err, ErrNothingToExport) {
			m.exportLogger().Info("XLSX export skipped, run log is empty")
		}
		return nil, err
	}

	export := &Export{
		Filename:    ExportFilename(m.clock(), "xlsx"),
		ContentType: ContentTypeXLSX,
		Rows:        len(entries),
		Data:        data,
	}
	m.exportLogger().Info("XLSX exported", zap.String("filename", export.Filename), zap.Int("rows", export.Rows))
	return export, nil
}

type IExportImpl struct {
	m *Monitor
}

func (ie *IExportImpl) ExportCSV() (*Export, error) { return ie.m.exportCSV() }

func (ie *IExportImpl) ExportXLSX() (*Export, error) { return ie.m.exportXLSX() }

func (m *Monitor) GetIExport() IExport {
	return &IExportImpl{m: m}
}
