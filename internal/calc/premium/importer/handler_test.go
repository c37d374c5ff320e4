package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	airship "Aerostat/internal/calc/airship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"length_m", "diameter_m", "altitude_m", "option"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func uploadRequest(t *testing.T, workbook *bytes.Buffer) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "airships.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/user/tools-premium/airship/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportAirships(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{200, 40, 1000, string(airship.MonocoqueShell)},
		{120, 30, 0, string(airship.HeliumFilledAirship)},
		{150, 35, 2000}, // option column empty, defaults to monocoque
	})

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Airship(rec, uploadRequest(t, workbook))

	require.Equal(t, http.StatusOK, rec.Code)

	var res AirshipImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 3, res.Count)
	assert.Equal(t, airship.MonocoqueShell, res.Results[0].Option)
	assert.Equal(t, airship.HeliumFilledAirship, res.Results[1].Option)
	assert.Equal(t, airship.MonocoqueShell, res.Results[2].Option)
}

func TestImportSkipsBadRows(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{200, 40, 1000, string(airship.MonocoqueShell)},
		{"not a number", 40, 1000},
		{30, 40, 1000},   // length < diameter
		{200, 40, 99999}, // altitude out of range
	})

	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Airship(rec, uploadRequest(t, workbook))

	require.Equal(t, http.StatusOK, rec.Code)

	var res AirshipImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Count)
}

func TestImportRequiresFile(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/user/tools-premium/airship/import", nil)

	h.Airship(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
