package monitor

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"liyu1981.xyz/vitals-monitor-service/pkg/common"
	"liyu1981.xyz/vitals-monitor-service/pkg/models"
)

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestWriteCSV_OneEntry(t *testing.T) {
	ts := time.Date(2026, 10, 17, 9, 30, 5, 0, time.Local).UnixMilli()
	var buf bytes.Buffer
	err := WriteCSV(&buf, []models.RunLogEntry{
		{Ts: ts, PatientID: "P-001", HeartRate: 118.456, SpO2: 89, Temp: 100.2, InEvent: true, AlertCount: 1},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ts,time,patientId,hr,spo2,temp,inEvent,alertCount", lines[0])
	assert.Equal(t, strings.Join([]string{
		strconv.FormatInt(ts, 10),
		"09:30:05", "P-001", "118.46", "89.00", "100.20", "1", "1",
	}, ","), lines[1])

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, []models.RunLogEntry{{Ts: ts, PatientID: "P-002"}}))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(buf.String()), ",0,0"))
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 5, 0, time.UTC)
	assert.Equal(t, "vitals-run-20261017-093005.csv", ExportFilename(now, "csv"))
}

func TestExportService(t *testing.T) {
	common.SetTestLoggerNop()
	clock := newFakeClock()
	m := newTestMonitor(t, clock)

	_, err := m.Export.ExportCSV()
	assert.ErrorIs(t, err, ErrNothingToExport)
	_, err = m.Export.ExportXLSX()
	assert.ErrorIs(t, err, ErrNothingToExport)

	m.Tick(clock.Now())

	csvExport, err := m.Export.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, 3, csvExport.Rows)
	assert.Equal(t, ContentTypeCSV, csvExport.ContentType)
	assert.Equal(t, ExportFilename(clock.Now(), "csv"), csvExport.Filename)
	assert.Len(t, strings.Split(strings.TrimSpace(string(csvExport.Data)), "\n"), 4)

	xlsxExport, err := m.Export.ExportXLSX()
	require.NoError(t, err)
	assert.Equal(t, ContentTypeXLSX, xlsxExport.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(xlsxExport.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Run Log")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, "P-001", rows[1][2])
	assert.Equal(t, "0", rows[1][6])
}
